package taxonomy

import "testing"

func TestSeedIntegrity(t *testing.T) {
	if len(AllDomains()) != 8 {
		t.Errorf("AllDomains() = %d domains, want 8", len(AllDomains()))
	}
	for _, sec := range AllSections() {
		if len(DomainsBySection(sec)) != 4 {
			t.Errorf("DomainsBySection(%s) = %d, want 4", sec, len(DomainsBySection(sec)))
		}
	}
	for _, s := range AllSkills() {
		if _, err := GetDomain(s.DomainID); err != nil {
			t.Errorf("skill %q references unknown domain %q", s.ID, s.DomainID)
		}
	}
	for _, d := range AllDomains() {
		if len(SkillsByDomain(d.ID)) == 0 {
			t.Errorf("domain %q has no skills", d.ID)
		}
	}
}

func TestGetSkill(t *testing.T) {
	s, err := GetSkill("linear-functions")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	if s.DomainID != "algebra" {
		t.Errorf("DomainID = %q, want algebra", s.DomainID)
	}

	if _, err := GetSkill("no-such-skill"); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestDomainOf(t *testing.T) {
	d, err := DomainOf("transitions")
	if err != nil {
		t.Fatalf("DomainOf: %v", err)
	}
	if d.ID != "expression-ideas" || d.Section != SectionReading {
		t.Errorf("DomainOf(transitions) = %+v", d)
	}
}

func TestSectionOf(t *testing.T) {
	sec, err := SectionOf("geometry-trig")
	if err != nil {
		t.Fatalf("SectionOf: %v", err)
	}
	if sec != SectionMath {
		t.Errorf("SectionOf(geometry-trig) = %s, want math", sec)
	}
}
