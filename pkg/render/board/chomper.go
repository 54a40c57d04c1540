package board

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pacgrid/pacgrid/pkg/path"
)

const (
	// chomperRadiusRatio sizes the chomper relative to the cell.
	chomperRadiusRatio = 0.62

	// Mouth half-angles (degrees) for the chomp cycle.
	mouthOpenDeg   = 32
	mouthClosedDeg = 4

	// chompDur is the period of one open-close-open mouth cycle.
	chompDur = "0.33s"
)

// writeChomper emits the animated character: a wedge-mouthed disc that
// follows the traversal path, rotating to face its direction of travel
// and chomping as it goes.
//
// animateMotion alone moves at constant speed along the path, which
// would desynchronize cell arrivals from the dot schedule (row turns
// are longer than cell steps). keyPoints/keyTimes pin every vertex to
// its schedule offset instead.
func (r *renderer) writeChomper(buf *bytes.Buffer, pts []path.Point, sched path.Schedule) {
	radius := r.theme.CellSize * chomperRadiusRatio
	open := pacmanPath(radius, mouthOpenDeg)
	closed := pacmanPath(radius, mouthClosedDeg)

	if len(pts) == 1 {
		fmt.Fprintf(buf, `  <g id="%s-chomper" transform="translate(%s,%s)">`+"\n", r.docID, num(pts[0].X), num(pts[0].Y))
		r.writeMouth(buf, open, closed)
		buf.WriteString("  </g>\n")
		return
	}

	verts := motionVertices(pts, sched.ReturnTrip)
	total := path.Seconds(sched.Total())
	keyPoints, keyTimes := motionKeys(verts, sched)

	fmt.Fprintf(buf, `  <g id="%s-chomper">`+"\n", r.docID)
	buf.WriteString("    <g>\n")
	r.writeMouth(buf, open, closed)
	fmt.Fprintf(buf, `      <animateTransform attributeName="transform" type="rotate" calcMode="discrete" values="%s" keyTimes="%s" dur="%s" repeatCount="indefinite"/>`+"\n",
		headingValues(verts), keyTimes, total)
	buf.WriteString("    </g>\n")
	fmt.Fprintf(buf, `    <animateMotion dur="%s" repeatCount="indefinite" calcMode="linear" keyPoints="%s" keyTimes="%s" path="%s"/>`+"\n",
		total, keyPoints, keyTimes, motionPath(verts))
	buf.WriteString("  </g>\n")
}

// writeMouth emits the chomper body with its mouth-morph animation.
func (r *renderer) writeMouth(buf *bytes.Buffer, open, closed string) {
	fmt.Fprintf(buf, `      <path d="%s" fill="%s">`+"\n", open, r.theme.Chomper)
	fmt.Fprintf(buf, `        <animate attributeName="d" values="%s;%s;%s" dur="%s" repeatCount="indefinite"/>`+"\n",
		open, closed, open, chompDur)
	buf.WriteString("      </path>\n")
}

// motionVertices lists the points the motion passes through: the path
// forward, plus the reverse leg when a return trip is scheduled.
func motionVertices(pts []path.Point, returnTrip bool) []path.Point {
	verts := make([]path.Point, len(pts), 2*len(pts))
	copy(verts, pts)
	if returnTrip {
		for i := len(pts) - 2; i >= 0; i-- {
			verts = append(verts, pts[i])
		}
	}
	return verts
}

// motionPath builds the SVG path the chomper travels.
func motionPath(verts []path.Point) string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", num(verts[0].X), num(verts[0].Y))
	for _, v := range verts[1:] {
		fmt.Fprintf(&b, " L%s,%s", num(v.X), num(v.Y))
	}
	return b.String()
}

// motionKeys computes the keyPoints/keyTimes pair that pins vertex i to
// time i × step. Both lists get a trailing hold entry so keyTimes ends
// at 1 with the chomper parked on the final vertex for the last step.
func motionKeys(verts []path.Point, sched path.Schedule) (keyPoints, keyTimes string) {
	dists := make([]float64, len(verts))
	totalDist := 0.0
	for i := 1; i < len(verts); i++ {
		totalDist += math.Hypot(verts[i].X-verts[i-1].X, verts[i].Y-verts[i-1].Y)
		dists[i] = totalDist
	}

	totalTime := sched.Total().Seconds()
	stepTime := sched.Step.Seconds()

	points := make([]string, 0, len(verts)+1)
	times := make([]string, 0, len(verts)+1)
	for i := range verts {
		frac := 0.0
		if totalDist > 0 {
			frac = dists[i] / totalDist
		}
		points = append(points, key(frac))
		times = append(times, key(float64(i)*stepTime/totalTime))
	}
	// Hold on the final vertex until the loop wraps.
	points = append(points, points[len(points)-1])
	times = append(times, "1")

	return strings.Join(points, ";"), strings.Join(times, ";")
}

// headingValues returns the discrete rotation track: at each vertex the
// chomper faces its outgoing segment; the final vertices keep the last
// heading.
func headingValues(verts []path.Point) string {
	values := make([]string, 0, len(verts)+1)
	angle := 0.0
	for i := range verts {
		if i < len(verts)-1 {
			dx := verts[i+1].X - verts[i].X
			dy := verts[i+1].Y - verts[i].Y
			if dx != 0 || dy != 0 {
				angle = math.Atan2(dy, dx) * 180 / math.Pi
				if angle < 0 {
					angle += 360
				}
			}
		}
		values = append(values, num(angle))
	}
	values = append(values, values[len(values)-1]) // hold entry
	return strings.Join(values, ";")
}

// pacmanPath builds the wedge-mouthed disc facing right (+x), centered
// on the origin. mouthDeg is the half-angle of the mouth opening.
func pacmanPath(radius, mouthDeg float64) string {
	rad := mouthDeg * math.Pi / 180
	x := radius * math.Cos(rad)
	y := radius * math.Sin(rad)
	// Long arc from the upper lip around the back to the lower lip.
	return fmt.Sprintf("M0,0 L%s,%s A%s,%s 0 1 0 %s,%s Z",
		num(x), num(-y), num(radius), num(radius), num(x), num(y))
}

// key formats a keyTimes/keyPoints fraction.
func key(v float64) string {
	if v <= 0 {
		return "0"
	}
	if v >= 1 {
		return "1"
	}
	s := strconv.FormatFloat(v, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return s
}
