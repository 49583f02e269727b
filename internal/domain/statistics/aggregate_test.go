package statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorebank/chorebank/internal/domain/model"
)

func approvedJob(userID string, payout int64, delivery string) model.UserJob {
	return model.UserJob{
		UserID:   userID,
		Money:    payout,
		Payout:   payout,
		Delivery: delivery,
		Solved:   true,
		Approved: true,
	}
}

func punishmentAt(userID string, amount int64, hhmm string) model.Punishment {
	ts, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return model.Punishment{UserID: userID, Amount: amount, CreatedAt: ts}
}

func TestAggregate_ThreeUsersFiveJobsTwoPunishments(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{
		{ID: "u1", Name: "Anna"},
		{ID: "u2", Name: "Bo"},
		{ID: "u3", Name: "Carl"},
	}
	jobs := []model.UserJob{
		approvedJob("u1", 100, "08:00:00"),
		approvedJob("u1", 50, "12:00:00"),
		approvedJob("u2", 200, "09:30:00"),
		approvedJob("u2", 25, "18:15:00"),
		approvedJob("u3", 75, "09:30:00"),
	}
	punishments := []model.Punishment{
		punishmentAt("u1", 40, "10:00"),
		punishmentAt("u2", 100, "20:00"),
	}

	res := Aggregate(Input{Jobs: jobs, Punishments: punishments, Profiles: profiles})

	require.Len(t, res.Summary, 3)
	byID := map[string]UserSummary{}
	for _, s := range res.Summary {
		byID[s.UserID] = s
	}

	assert.Equal(t, UserSummary{UserID: "u1", Name: "Anna", JobsCompleted: 2, GrossEarned: 150, TotalPunished: 40, NetEarnings: 110}, byID["u1"])
	assert.Equal(t, UserSummary{UserID: "u2", Name: "Bo", JobsCompleted: 2, GrossEarned: 225, TotalPunished: 100, NetEarnings: 125}, byID["u2"])
	assert.Equal(t, UserSummary{UserID: "u3", Name: "Carl", JobsCompleted: 1, GrossEarned: 75, TotalPunished: 0, NetEarnings: 75}, byID["u3"])

	// Buckets are the distinct event times, ascending.
	wantBuckets := []string{"08:00", "09:30", "10:00", "12:00", "18:15", "20:00"}
	gotBuckets := make([]string, 0, len(res.Series))
	for _, p := range res.Series {
		gotBuckets = append(gotBuckets, p.Bucket)
	}
	assert.Equal(t, wantBuckets, gotBuckets)

	// The final bucket matches every user's summary net earnings.
	final := res.Series[len(res.Series)-1].Totals
	for _, s := range res.Summary {
		assert.Equal(t, s.NetEarnings, final[s.UserID], "user %s", s.UserID)
	}

	// Running totals dip on punishments but stay consistent per user.
	assert.Equal(t, int64(100), res.Series[0].Totals["u1"])
	assert.Equal(t, int64(60), res.Series[2].Totals["u1"], "punishment applied at 10:00")
	assert.Equal(t, int64(110), res.Series[3].Totals["u1"])
}

func TestAggregate_ExampleScenario(t *testing.T) {
	t.Parallel()

	// User U: assignment money=150 approved at rating good pays 100;
	// then a punishment of 40 with reason "late".
	payout := model.RatingGood.Payout(150)
	require.Equal(t, int64(100), payout)

	profiles := []model.Profile{{ID: "u", Name: "U"}}
	jobs := []model.UserJob{approvedJob("u", payout, "14:00:00")}
	punishments := []model.Punishment{punishmentAt("u", 40, "16:00")}

	res := Aggregate(Input{Jobs: jobs, Punishments: punishments, Profiles: profiles})

	require.Len(t, res.Summary, 1)
	s := res.Summary[0]
	assert.Equal(t, 1, s.JobsCompleted)
	assert.Equal(t, int64(100), s.GrossEarned)
	assert.Equal(t, int64(40), s.TotalPunished)
	assert.Equal(t, int64(60), s.NetEarnings)

	require.Len(t, res.Series, 2)
	assert.Equal(t, int64(100), res.Series[0].Totals["u"])
	assert.Equal(t, int64(60), res.Series[1].Totals["u"])
}

func TestAggregate_UserWithoutEvents(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{{ID: "u1", Name: "Anna"}, {ID: "idle", Name: "Idle"}}
	jobs := []model.UserJob{approvedJob("u1", 10, "08:00:00")}

	res := Aggregate(Input{Jobs: jobs, Profiles: profiles})

	require.Len(t, res.Summary, 2)
	for _, s := range res.Summary {
		if s.UserID == "idle" {
			assert.Zero(t, s.JobsCompleted)
			assert.Zero(t, s.GrossEarned)
			assert.Zero(t, s.TotalPunished)
			assert.Zero(t, s.NetEarnings)
		}
	}

	// No spurious buckets from the idle user, but the snapshot covers everyone.
	require.Len(t, res.Series, 1)
	assert.Equal(t, int64(0), res.Series[0].Totals["idle"])
}

func TestAggregate_SameBucketAppliedBeforeSnapshot(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{{ID: "u1", Name: "Anna"}}
	jobs := []model.UserJob{
		approvedJob("u1", 100, "09:00:00"),
		approvedJob("u1", 30, "09:00:30"), // same minute bucket
	}
	punishments := []model.Punishment{punishmentAt("u1", 20, "09:00")}

	res := Aggregate(Input{Jobs: jobs, Punishments: punishments, Profiles: profiles})

	require.Len(t, res.Series, 1)
	assert.Equal(t, int64(110), res.Series[0].Totals["u1"])
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	res := Aggregate(Input{})
	assert.Empty(t, res.Users)
	assert.Empty(t, res.Summary)
	assert.Empty(t, res.Series)
}

func TestAggregate_EventsForUnknownUsersIgnored(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{{ID: "u1", Name: "Anna"}}
	jobs := []model.UserJob{approvedJob("ghost", 500, "08:00:00")}

	res := Aggregate(Input{Jobs: jobs, Profiles: profiles})

	require.Len(t, res.Summary, 1)
	assert.Zero(t, res.Summary[0].GrossEarned)
	require.Len(t, res.Series, 1)
	assert.NotContains(t, res.Series[0].Totals, "ghost")
}

func TestAggregate_UsersSortedByLabel(t *testing.T) {
	t.Parallel()

	profiles := []model.Profile{
		{ID: "u2", Name: "Zoe"},
		{ID: "u1", Name: "Anna"},
	}
	res := Aggregate(Input{Profiles: profiles})

	require.Len(t, res.Users, 2)
	assert.Equal(t, "Anna", res.Users[0].Name)
	assert.Equal(t, "Zoe", res.Users[1].Name)
}

func TestAggregate_UsesPayoutNotPromisedMoney(t *testing.T) {
	t.Parallel()

	// A good grade on a 150 job credits 100. The charts follow the credit.
	job := model.UserJob{
		UserID:   "u1",
		Money:    150,
		Payout:   100,
		Delivery: "14:00:00",
		Solved:   true,
		Approved: true,
	}
	profiles := []model.Profile{{ID: "u1", Name: "Anna"}}

	res := Aggregate(Input{Jobs: []model.UserJob{job}, Profiles: profiles})

	require.Len(t, res.Summary, 1)
	assert.Equal(t, int64(100), res.Summary[0].GrossEarned)
	assert.Equal(t, int64(100), res.Summary[0].NetEarnings)
	require.Len(t, res.Series, 1)
	assert.Equal(t, int64(100), res.Series[0].Totals["u1"])
}
