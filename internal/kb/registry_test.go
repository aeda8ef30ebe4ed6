package kb

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Vitamin-C!", "vitaminc"},
		{"vitamin c", "vitaminc"},
		{"  Aqua  ", "aqua"},
		{"1,4-Dihydroxybenzene", "14dihydroxybenzene"},
		{"", ""},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, s := range []string{"Sodium Hyaluronate", "L-Ascorbic Acid", "ALOE VERA", "ceramide np"} {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", s, twice, once)
		}
	}
}

func TestRegistry_FindByCanonicalAndAlias(t *testing.T) {
	r := MustRegistry([]Profile{
		{CanonicalName: "Glycerin", Aliases: []string{"Glycerol", "Vegetable Glycerin"}, SafetyRating: RatingSafe},
		{CanonicalName: "Fragrance", Aliases: []string{"Parfum"}, SafetyRating: RatingCaution},
	})

	for _, name := range []string{"Glycerin", "glycerin", "GLYCEROL", "vegetable-glycerin"} {
		p, ok := r.Find(name)
		if !ok {
			t.Fatalf("Find(%q) missed", name)
		}
		if p.CanonicalName != "Glycerin" {
			t.Errorf("Find(%q) resolved to %q, want Glycerin", name, p.CanonicalName)
		}
	}

	if _, ok := r.Find("Unicornol"); ok {
		t.Error("Find(Unicornol) matched, want miss")
	}
}

func TestNewRegistry_AliasCollision(t *testing.T) {
	_, err := NewRegistry([]Profile{
		{CanonicalName: "Vitamin B3", Aliases: []string{"Niacinamide"}},
		{CanonicalName: "Nicotinamide", Aliases: []string{"Niacinamide"}},
	})
	if err == nil {
		t.Fatal("expected collision error for shared alias, got nil")
	}
}

func TestNewRegistry_CanonicalCollision(t *testing.T) {
	_, err := NewRegistry([]Profile{
		{CanonicalName: "Alpha-Arbutin"},
		{CanonicalName: "Alpha Arbutin"},
	})
	if err == nil {
		t.Fatal("expected collision error for canonical names sharing a key, got nil")
	}
}

func TestNewRegistry_EmptyCanonicalName(t *testing.T) {
	_, err := NewRegistry([]Profile{{CanonicalName: "  !!  "}})
	if err == nil {
		t.Fatal("expected error for canonical name that normalizes to empty, got nil")
	}
}

func TestSkinCompat_For(t *testing.T) {
	c := SkinCompat{Oily: true, Dry: true}
	want := map[SkinType]bool{
		SkinOily: true, SkinCombination: false, SkinNormal: false, SkinDry: true, SkinSensitive: false,
	}
	for _, st := range SkinTypes {
		if got := c.For(st); got != want[st] {
			t.Errorf("For(%s) = %v, want %v", st, got, want[st])
		}
	}
}

func TestSafetyRating_Penalty(t *testing.T) {
	cases := map[SafetyRating]int{RatingSafe: 0, RatingCaution: 5, RatingAvoid: 20}
	for r, want := range cases {
		if got := r.Penalty(); got != want {
			t.Errorf("%s.Penalty() = %d, want %d", r, got, want)
		}
	}
}
