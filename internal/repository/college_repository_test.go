package repository

import "testing"

func TestCollegeRepositoryListFilters(t *testing.T) {
	repo := NewCollegeRepository(DefaultColleges())

	all := repo.List(CollegeFilter{})
	if len(all) != 4 {
		t.Fatalf("got %d colleges, want 4", len(all))
	}

	srinagar := repo.List(CollegeFilter{District: "srinagar"})
	if len(srinagar) != 2 {
		t.Fatalf("got %d Srinagar colleges, want 2", len(srinagar))
	}

	government := repo.List(CollegeFilter{Type: "government"})
	for _, c := range government {
		if string(c.Type) != "Government" {
			t.Fatalf("type filter leaked %s", c.Type)
		}
	}

	btech := repo.List(CollegeFilter{Course: "b.tech"})
	if len(btech) != 1 {
		t.Fatalf("got %d colleges offering B.Tech, want 1", len(btech))
	}
	if btech[0].ID != "nit_srinagar_01" {
		t.Fatalf("got %s, want nit_srinagar_01", btech[0].ID)
	}

	combined := repo.List(CollegeFilter{District: "Srinagar", Course: "B.Com"})
	if len(combined) != 1 || combined[0].ID != "gc_srinagar_01" {
		t.Fatalf("combined filter mismatch: %v", combined)
	}
}

func TestCollegeRepositoryGetByID(t *testing.T) {
	repo := NewCollegeRepository(DefaultColleges())

	c, ok := repo.GetByID("gu_jammu_01")
	if !ok {
		t.Fatal("expected to find University of Jammu")
	}
	if c.District != "Jammu" {
		t.Fatalf("got district %s, want Jammu", c.District)
	}

	if _, ok := repo.GetByID("missing"); ok {
		t.Fatal("expected lookup of unknown id to fail")
	}
}
