package domain

import "testing"

func TestVerdictString(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    string
	}{
		{
			"fake with reason",
			FakeVerdict(0.92, "wrong batch code"),
			"Likely FAKE (similarity 0.92). Reason: wrong batch code",
		},
		{
			"real with reason",
			RealVerdict(0.91, "matches manufacturer"),
			"Likely GENUINE (similarity 0.91). Reason: matches manufacturer",
		},
		{
			"unknown carries top score to two decimals",
			UnknownVerdict(0.5),
			"Unknown product: no close match in reference data (top similarity 0.50)",
		},
		{
			"no matches",
			NoMatchesVerdict(),
			"No reference matches found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToRecord(t *testing.T) {
	t.Run("drug listing renders price as text", func(t *testing.T) {
		listing := &DrugListing{DrugName: "Amoxil", Price: 3500}
		record := listing.ToRecord()

		if record.Category != CategoryDrug {
			t.Errorf("category = %v, want drug", record.Category)
		}
		if record.Fields["price"] != "3500" {
			t.Errorf("price = %q, want %q", record.Fields["price"], "3500")
		}
	})

	t.Run("baby listing renders price as text", func(t *testing.T) {
		listing := &BabyProductListing{Name: "NAN Optipro 1", PriceInNaira: 8900}
		record := listing.ToRecord()

		if record.Category != CategoryBabyProduct {
			t.Errorf("category = %v, want baby-product", record.Category)
		}
		if record.Fields["price_in_naira"] != "8900" {
			t.Errorf("price_in_naira = %q, want %q", record.Fields["price_in_naira"], "8900")
		}
	})
}
