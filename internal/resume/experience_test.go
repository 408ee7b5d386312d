package resume

import "testing"

func TestEstimateExperienceYears(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantYears int
		wantLevel Level
	}{
		{"explicit years", "5 years of experience with python", 5, LevelSenior},
		{"plus suffix", "10+ years of experience leading teams", 10, LevelExecutive},
		{"years in", "3 years in backend development", 3, LevelMid},
		{"max wins", "2 years as intern, then 8 years developing services", 8, LevelLead},
		{"entry threshold", "1 year of experience", 1, LevelEntry},
		{"no signal", "loves writing software", 0, LevelEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			years, level := EstimateExperience(tc.text)
			if years != tc.wantYears {
				t.Fatalf("years = %d, want %d", years, tc.wantYears)
			}
			if level != tc.wantLevel {
				t.Fatalf("level = %s, want %s", level, tc.wantLevel)
			}
		})
	}
}

func TestEstimateExperienceIndicatorsWithoutYears(t *testing.T) {
	cases := []struct {
		name      string
		text      string
		wantLevel Level
	}{
		{"intern", "currently an intern at a startup", LevelEntry},
		{"senior title", "senior software engineer", LevelSenior},
		{"director", "director of engineering", LevelExecutive},
		{"entry beats senior when both", "junior developer mentored by a senior engineer", LevelEntry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			years, level := EstimateExperience(tc.text)
			if years != 0 {
				t.Fatalf("years = %d, want 0", years)
			}
			if level != tc.wantLevel {
				t.Fatalf("level = %s, want %s", level, tc.wantLevel)
			}
		})
	}
}

func TestEstimateExperienceYearsOverrideIndicators(t *testing.T) {
	years, level := EstimateExperience("junior developer with 12 years of experience")
	if years != 12 {
		t.Fatalf("years = %d, want 12", years)
	}
	if level != LevelExecutive {
		t.Fatalf("level = %s, want %s", level, LevelExecutive)
	}
}

func TestLevelRankOrdering(t *testing.T) {
	ordered := []Level{LevelEntry, LevelMid, LevelSenior, LevelLead, LevelExecutive}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1].Rank() >= ordered[i].Rank() {
			t.Fatalf("%s should rank below %s", ordered[i-1], ordered[i])
		}
	}
	if Level("unknown").Valid() {
		t.Fatalf("unknown level should not be valid")
	}
}
