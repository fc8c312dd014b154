package numbering

import (
	"strconv"
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestNext(t *testing.T) {
	cases := []struct {
		name     string
		family   string
		yy, mm   int
		existing []string
		want     string
	}{
		{name: "empty snapshot", family: FamilyEstimation, yy: 25, mm: 5, want: "BE25050001"},
		{name: "other prefixes only", family: FamilyEstimation, yy: 25, mm: 5, existing: []string{"BE25040009", "WO25050003"}, want: "BE25050001"},
		{name: "takes max not count", family: FamilyEstimation, yy: 25, mm: 5, existing: []string{"BE25050002", "BE25050010", "BE25050004"}, want: "BE25050011"},
		{name: "malformed suffix ignored", family: FamilyWorkOrder, yy: 25, mm: 5, existing: []string{"WO2505abc", "WO25050003", "WO2505", "WO2505-0009", "WO2505 12"}, want: "WO25050004"},
		{name: "only malformed", family: FamilyWorkOrder, yy: 25, mm: 12, existing: []string{"WO2512x1"}, want: "WO25120001"},
		{name: "widens past four digits", family: FamilyWorkOrder, yy: 25, mm: 1, existing: []string{"WO25019999"}, want: "WO250110000"},
		{name: "four digit year is reduced", family: FamilyEstimation, yy: 2025, mm: 5, existing: []string{"BE25050001"}, want: "BE25050002"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Next(tc.family, tc.yy, tc.mm, tc.existing))
		})
	}
}

func TestNextIsGreaterThanEveryExistingSuffix(t *testing.T) {
	existing := []string{"BE25050001", "BE25050417", "BE25050033", "BE25050400"}
	got := Next(FamilyEstimation, 25, 5, existing)
	require.Len(t, got, len("BE25050000"))

	gotSuffix, err := strconv.Atoi(got[len("BE2505"):])
	require.NoError(t, err)
	for _, n := range existing {
		s, err := strconv.Atoi(n[len("BE2505"):])
		require.NoError(t, err)
		require.Greater(t, gotSuffix, s)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	existing := []string{"WO25050008", "WO25050002"}
	require.Equal(t, Next(FamilyWorkOrder, 25, 5, existing), Next(FamilyWorkOrder, 25, 5, existing))
}

func TestNextAtAndExisting(t *testing.T) {
	at := time.Date(2025, time.May, 31, 23, 0, 0, 0, time.UTC)
	jobs := []entities.Job{
		{WONumber: "WO25050005", Estimate: entities.EstimateData{EstimationNumber: "BE25050012"}},
		{Estimate: entities.EstimateData{EstimationNumber: "BE25050003"}},
		{},
	}

	require.Equal(t, "BE2505", PrefixAt(FamilyEstimation, at))
	require.Equal(t, []string{"WO25050005"}, Existing(FamilyWorkOrder, jobs))
	require.Equal(t, []string{"BE25050012", "BE25050003"}, Existing(FamilyEstimation, jobs))
	require.Equal(t, "WO25050006", NextAt(FamilyWorkOrder, at, Existing(FamilyWorkOrder, jobs)))
	require.Equal(t, "BE25050013", NextAt(FamilyEstimation, at, Existing(FamilyEstimation, jobs)))
}
