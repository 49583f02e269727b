// Package statistics folds settled assignments and punishments into per-user
// totals and a cumulative time series for the earnings charts.
package statistics

import (
	"sort"
	"time"

	"github.com/chorebank/chorebank/internal/domain/model"
)

// ChartUser labels a series line. Name is the display label (truncated to
// 15 runes); ID disambiguates users whose labels collide.
type ChartUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserSummary holds per-user settlement totals.
type UserSummary struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	JobsCompleted int    `json:"jobs_completed"`
	GrossEarned   int64  `json:"gross_earned"`
	TotalPunished int64  `json:"total_punished"`
	NetEarnings   int64  `json:"net_earnings"`
}

// TimePoint is one chart bucket: the running cumulative net total of every
// user as of that HH:MM bucket, with all of the bucket's events applied
// before the snapshot.
type TimePoint struct {
	Bucket string           `json:"bucket"`
	Totals map[string]int64 `json:"totals"`
}

// Input carries the already-fetched source lists for one aggregation pass.
// Jobs must be the approved assignments only; earnings come from the payout
// credited at approval, not the promised money.
type Input struct {
	Jobs        []model.UserJob
	Punishments []model.Punishment
	Profiles    []model.Profile
}

// Result is the aggregated dashboard payload.
type Result struct {
	Users   []ChartUser   `json:"users"`
	Summary []UserSummary `json:"summary"`
	Series  []TimePoint   `json:"series"`
}

// Aggregate computes the per-user summary and the cumulative time series.
// Events are bucketed to minute precision: assignments by their delivery
// time-of-day, punishments by the clock time of created_at. Users with no
// events appear in the summary with zero fields but add no buckets. The
// final bucket of the series equals each user's summary net earnings.
func Aggregate(in Input) Result {
	users := chartUsers(in.Profiles)

	summaryByID := make(map[string]*UserSummary, len(in.Profiles))
	for _, u := range users {
		summaryByID[u.ID] = &UserSummary{UserID: u.ID, Name: u.Name}
	}

	jobsByBucket := make(map[string][]model.UserJob)
	punishmentsByBucket := make(map[string][]model.Punishment)
	bucketSet := make(map[string]struct{})

	for _, j := range in.Jobs {
		if s, ok := summaryByID[j.UserID]; ok {
			s.JobsCompleted++
			s.GrossEarned += j.Payout
			s.NetEarnings += j.Payout
		}
		b, ok := jobBucket(j)
		if !ok {
			continue
		}
		jobsByBucket[b] = append(jobsByBucket[b], j)
		bucketSet[b] = struct{}{}
	}

	for _, p := range in.Punishments {
		if s, ok := summaryByID[p.UserID]; ok {
			s.TotalPunished += p.Amount
			s.NetEarnings -= p.Amount
		}
		b := clockBucket(p.CreatedAt)
		punishmentsByBucket[b] = append(punishmentsByBucket[b], p)
		bucketSet[b] = struct{}{}
	}

	buckets := make([]string, 0, len(bucketSet))
	for b := range bucketSet {
		buckets = append(buckets, b)
	}
	sort.Strings(buckets)

	cumulative := make(map[string]int64, len(users))
	for _, u := range users {
		cumulative[u.ID] = 0
	}

	series := make([]TimePoint, 0, len(buckets))
	for _, b := range buckets {
		for _, j := range jobsByBucket[b] {
			if _, ok := cumulative[j.UserID]; ok {
				cumulative[j.UserID] += j.Payout
			}
		}
		for _, p := range punishmentsByBucket[b] {
			if _, ok := cumulative[p.UserID]; ok {
				cumulative[p.UserID] -= p.Amount
			}
		}
		totals := make(map[string]int64, len(cumulative))
		for id, v := range cumulative {
			totals[id] = v
		}
		series = append(series, TimePoint{Bucket: b, Totals: totals})
	}

	summary := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summary = append(summary, *summaryByID[u.ID])
	}

	return Result{Users: users, Summary: summary, Series: series}
}

// chartUsers builds display labels sorted by label, id as tie-breaker.
func chartUsers(profiles []model.Profile) []ChartUser {
	users := make([]ChartUser, 0, len(profiles))
	for i := range profiles {
		users = append(users, ChartUser{ID: profiles[i].ID, Name: profiles[i].DisplayName()})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Name != users[j].Name {
			return users[i].Name < users[j].Name
		}
		return users[i].ID < users[j].ID
	})
	return users
}

// jobBucket normalizes an assignment's delivery time-of-day to HH:MM.
func jobBucket(j model.UserJob) (string, bool) {
	if len(j.Delivery) < 5 {
		return "", false
	}
	return j.Delivery[:5], true
}

// clockBucket normalizes an event timestamp to its HH:MM clock time.
func clockBucket(t time.Time) string {
	return t.Format("15:04")
}
