package github

import (
	"context"
	"fmt"
	"time"

	"github.com/pacgrid/pacgrid/pkg/contrib"
	"github.com/pacgrid/pacgrid/pkg/errors"
	"github.com/pacgrid/pacgrid/pkg/httputil"
	"github.com/pacgrid/pacgrid/pkg/integrations"
)

const calendarQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
            contributionLevel
          }
        }
      }
    }
  }
}`

const yearsQuery = `
query($login: String!) {
  user(login: $login) {
    createdAt
  }
}`

// Client provides access to the GitHub GraphQL API.
// It handles HTTP requests with caching, automatic retries, and authentication.
type Client struct {
	*integrations.Client
	endpoint string
}

// NewClient creates a GitHub API client. The token must have read:user
// scope; an empty token still constructs a client but every request
// will come back unauthorized.
func NewClient(token string, cacheTTL time.Duration) (*Client, error) {
	cache, err := integrations.NewCache(cacheTTL)
	if err != nil {
		return nil, err
	}
	return newClient(token, cache), nil
}

// NewClientWithCacheDir is like [NewClient] but caches under dir
// instead of the default cache directory.
func NewClientWithCacheDir(token, dir string, cacheTTL time.Duration) (*Client, error) {
	cache, err := httputil.NewCache(dir, cacheTTL)
	if err != nil {
		return nil, err
	}
	return newClient(token, cache), nil
}

func newClient(token string, cache *httputil.Cache) *Client {
	headers := map[string]string{"Accept": "application/json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:   integrations.NewClient(cache.Namespace("github:"), headers),
		endpoint: "https://api.github.com/graphql",
	}
}

// FetchCalendar retrieves the user's contribution records for the year
// ending at end. If refresh is true, cached data is bypassed.
func (c *Client) FetchCalendar(ctx context.Context, username string, end contrib.Date, refresh bool) ([]contrib.Record, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	to := end.Time
	from := to.AddDate(-1, 0, 1)
	key := fmt.Sprintf("calendar:%s:%s", username, end)

	var records []contrib.Record
	err := c.Cached(ctx, key, refresh, &records, func() error {
		fetched, err := c.fetchRange(ctx, username, from, to)
		if err != nil {
			return err
		}
		records = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) fetchRange(ctx context.Context, username string, from, to time.Time) ([]contrib.Record, error) {
	req := graphqlRequest{
		Query: calendarQuery,
		Variables: map[string]any{
			"login": username,
			"from":  from.Format(time.RFC3339),
			"to":    to.Format(time.RFC3339),
		},
	}

	var resp calendarResponse
	if err := c.Post(ctx, c.endpoint, req, &resp); err != nil {
		return nil, err
	}
	if err := checkErrors(resp.Errors); err != nil {
		return nil, err
	}
	if resp.Data.User == nil {
		return nil, errors.Wrap(errors.ErrCodeUserNotFound, integrations.ErrNotFound, "user %s not found", username)
	}

	var records []contrib.Record
	for _, week := range resp.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			date, err := contrib.ParseDate(day.Date)
			if err != nil {
				return nil, fmt.Errorf("malformed calendar date %q: %w", day.Date, err)
			}
			level, ok := levelNames[day.ContributionLevel]
			if !ok {
				level = contrib.LevelFor(day.ContributionCount)
			}
			records = append(records, contrib.Record{
				Date:  date,
				Count: day.ContributionCount,
				Level: level,
			})
		}
	}
	return records, nil
}

// FetchYear retrieves the user's contribution records for one calendar
// year. Combined with [Client.FetchAccountYears] it covers an account's
// full history.
func (c *Client) FetchYear(ctx context.Context, username string, year int, refresh bool) ([]contrib.Record, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	key := fmt.Sprintf("year:%s:%d", username, year)

	var records []contrib.Record
	err := c.Cached(ctx, key, refresh, &records, func() error {
		fetched, err := c.fetchRange(ctx, username, from, to)
		if err != nil {
			return err
		}
		records = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchAccountYears returns every calendar year from the account's
// creation through the current year, oldest first.
func (c *Client) FetchAccountYears(ctx context.Context, username string) ([]int, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var years []int
	err := c.Cached(ctx, "years:"+username, false, &years, func() error {
		req := graphqlRequest{
			Query:     yearsQuery,
			Variables: map[string]any{"login": username},
		}

		var resp yearsResponse
		if err := c.Post(ctx, c.endpoint, req, &resp); err != nil {
			return err
		}
		if err := checkErrors(resp.Errors); err != nil {
			return err
		}
		if resp.Data.User == nil {
			return errors.Wrap(errors.ErrCodeUserNotFound, integrations.ErrNotFound, "user %s not found", username)
		}

		created, err := time.Parse(time.RFC3339, resp.Data.User.CreatedAt)
		if err != nil {
			return fmt.Errorf("malformed createdAt %q: %w", resp.Data.User.CreatedAt, err)
		}
		years = years[:0]
		for y := created.Year(); y <= time.Now().Year(); y++ {
			years = append(years, y)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return years, nil
}

func checkErrors(errs []graphqlError) error {
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	switch first.Type {
	case "NOT_FOUND":
		return errors.Wrap(errors.ErrCodeUserNotFound, integrations.ErrNotFound, "%s", first.Message)
	case "FORBIDDEN", "INSUFFICIENT_SCOPES":
		return fmt.Errorf("%w: %s", integrations.ErrUnauthorized, first.Message)
	default:
		return fmt.Errorf("%w: %s", integrations.ErrNetwork, first.Message)
	}
}
