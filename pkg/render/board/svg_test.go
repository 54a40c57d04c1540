package board

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/grid"
	"github.com/pacgrid/pacgrid/pkg/path"
	"github.com/pacgrid/pacgrid/pkg/render/theme"
)

// twoWeekFixture is the canonical end-to-end scenario: 14 records over
// two Sun-Sat weeks, all level 0 except one level-4 day.
func twoWeekFixture() (grid.Grid, []path.Point, path.Schedule) {
	start := contrib.NewDate(2025, time.August, 17) // a Sunday
	records := make([]contrib.Record, 14)
	for i := range records {
		records[i] = contrib.Record{Date: start.AddDays(i), Count: 0, Level: 0}
	}
	records[10].Count = 12
	records[10].Level = 4

	g := grid.Build(records)
	th := theme.GitHubDark()
	pts := path.Plan(g, th.Geometry(), th.Mode())
	sched := path.NewSchedule(pts, th.Step(), th.ReturnTrip)
	return g, pts, sched
}

func TestRenderSVGTwoWeekScenario(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	if g.Weeks() != 2 {
		t.Fatalf("fixture grid has %d weeks, want 2", g.Weeks())
	}
	if len(pts) != 14 {
		t.Fatalf("fixture path has %d points, want 14", len(pts))
	}

	svg := string(RenderSVG(g, pts, sched, WithDocumentID("t")))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("output does not start with an svg element")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("output is not closed")
	}

	// Exactly one dot: only one record has level > 0.
	if got := strings.Count(svg, "<circle"); got != 1 {
		t.Errorf("got %d animated dots, want 1", got)
	}
	// 14 cells plus 5 legend swatches plus the background.
	if got := strings.Count(svg, "<rect"); got != 20 {
		t.Errorf("got %d rects, want 20", got)
	}
	if !strings.Contains(svg, "<animateMotion") {
		t.Error("missing animateMotion for the chomper")
	}
	if !strings.Contains(svg, "<animateTransform") {
		t.Error("missing animateTransform heading track")
	}
}

func TestRenderSVGLevelColors(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	svg := string(RenderSVG(g, pts, sched, WithDocumentID("t")))

	// Level 0 cells use the darkest palette entry, the level-4 cell the
	// brightest.
	if !strings.Contains(svg, `fill="#161b22"`) {
		t.Error("level 0 color #161b22 not present")
	}
	if !strings.Contains(svg, `fill="#39d353"`) {
		t.Error("level 4 color #39d353 not present")
	}
	if got := strings.Count(svg, `data-level="4"`); got != 1 {
		t.Errorf("got %d level-4 cells, want 1", got)
	}
}

func TestRenderSVGDotTiming(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	svg := string(RenderSVG(g, pts, sched, WithDocumentID("t")))

	// The level-4 record is day 10 (Wednesday of week 2, row 3, col 1).
	// Horizontal traversal: rows 0-2 contribute 2 cells each; row 3 is
	// odd so it runs right to left, visiting (3,1) first → seq 6.
	var want string
	for _, p := range pts {
		if p.Record.Level == 4 {
			want = path.Seconds(sched.StartFor(p.Seq))
		}
	}
	if want == "" {
		t.Fatal("fixture lost its level-4 point")
	}
	if !strings.Contains(svg, `begin="`+want+`"`) {
		t.Errorf("dot animation does not begin at %s", want)
	}
}

func TestRenderSVGDeterministicWithDocumentID(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	a := RenderSVG(g, pts, sched, WithDocumentID("fixed"))
	b := RenderSVG(g, pts, sched, WithDocumentID("fixed"))
	if !bytes.Equal(a, b) {
		t.Error("same inputs and document ID produced different output")
	}
}

func TestRenderSVGUniqueDocumentIDs(t *testing.T) {
	if NewDocumentID() == NewDocumentID() {
		t.Error("NewDocumentID returned the same value twice")
	}
}

func TestRenderSVGEmptyGridPlaceholder(t *testing.T) {
	g := grid.Build(nil)
	th := theme.GitHubDark()
	pts := path.Plan(g, th.Geometry(), th.Mode())
	sched := path.NewSchedule(pts, th.Step(), false)

	a := RenderSVG(g, pts, sched)
	b := RenderSVG(g, pts, sched)

	if !bytes.Equal(a, b) {
		t.Error("placeholder output is not stable")
	}
	svg := string(a)
	if !strings.Contains(svg, "No contributions yet") {
		t.Error("placeholder message missing")
	}
	if strings.Contains(svg, "<animate") {
		t.Error("placeholder should carry no animation")
	}
}

func TestRenderSVGTitleEscaped(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	svg := string(RenderSVG(g, pts, sched,
		WithDocumentID("t"),
		WithTitle(`<script>&`),
		WithStats(contrib.Stats{Total: 42, FirstYear: 2025, LastYear: 2025}),
	))

	if strings.Contains(svg, "<script>") {
		t.Error("title not escaped")
	}
	if !strings.Contains(svg, "Score: 42") {
		t.Error("score line missing")
	}
	if !strings.Contains(svg, "2025") {
		t.Error("year range missing from header")
	}
}

func TestMotionKeysPinned(t *testing.T) {
	_, pts, sched := twoWeekFixture()
	verts := motionVertices(pts, false)
	keyPoints, keyTimes := motionKeys(verts, sched)

	kp := strings.Split(keyPoints, ";")
	kt := strings.Split(keyTimes, ";")
	if len(kp) != len(kt) {
		t.Fatalf("keyPoints has %d entries, keyTimes %d", len(kp), len(kt))
	}
	if len(kp) != len(verts)+1 {
		t.Fatalf("got %d entries, want %d (vertices plus hold)", len(kp), len(verts)+1)
	}
	if kt[0] != "0" || kt[len(kt)-1] != "1" {
		t.Errorf("keyTimes must span 0..1, got %s..%s", kt[0], kt[len(kt)-1])
	}
	if kp[len(kp)-1] != "1" || kp[len(kp)-2] != "1" {
		t.Errorf("final keyPoints should hold at 1, got %s,%s", kp[len(kp)-2], kp[len(kp)-1])
	}
}

func TestMotionVerticesReturnTrip(t *testing.T) {
	_, pts, _ := twoWeekFixture()

	oneWay := motionVertices(pts, false)
	if len(oneWay) != len(pts) {
		t.Errorf("one-way vertices = %d, want %d", len(oneWay), len(pts))
	}

	round := motionVertices(pts, true)
	if len(round) != 2*len(pts)-1 {
		t.Fatalf("round-trip vertices = %d, want %d", len(round), 2*len(pts)-1)
	}
	last := round[len(round)-1]
	if last.X != pts[0].X || last.Y != pts[0].Y {
		t.Error("round trip does not end at the start point")
	}
}

func TestHeadingValues(t *testing.T) {
	verts := []path.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, // heading right → 0
		{X: 10, Y: 10}, // heading down → 90
		{X: 0, Y: 10},  // heading left → 180
	}
	got := strings.Split(headingValues(verts), ";")
	want := []string{"0", "90", "180", "180", "180"}
	if len(got) != len(want) {
		t.Fatalf("got %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPacmanPathShape(t *testing.T) {
	d := pacmanPath(10, 30)
	if !strings.HasPrefix(d, "M0,0 L") || !strings.HasSuffix(d, "Z") {
		t.Errorf("unexpected path shape: %s", d)
	}
	if !strings.Contains(d, "A10,10 0 1 0") {
		t.Errorf("arc should take the long way around: %s", d)
	}
}

func TestRenderJSON(t *testing.T) {
	g, pts, sched := twoWeekFixture()
	data, err := RenderJSON(g, pts, sched)
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if l.Weeks != 2 || l.Populated != 14 || len(l.Points) != 14 {
		t.Errorf("layout = weeks %d, populated %d, points %d", l.Weeks, l.Populated, len(l.Points))
	}
	if l.StepSeconds != sched.Step.Seconds() {
		t.Errorf("StepSeconds = %v, want %v", l.StepSeconds, sched.Step.Seconds())
	}
	for i, p := range l.Points {
		if p.Seq != i {
			t.Fatalf("point %d has seq %d", i, p.Seq)
		}
	}
}
