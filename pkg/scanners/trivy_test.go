package scanners

import "testing"

func TestSummarizeVulnerabilitiesHistogram(t *testing.T) {
	raw := []byte(`{"Results":[
		{"Target":"image","Vulnerabilities":[
			{"Severity":"CRITICAL"},
			{"Severity":"HIGH"},
			{"Severity":"HIGH"}
		]},
		{"Target":"lib"},
		{"Target":"app","Vulnerabilities":[
			{"Severity":"LOW"},
			{"Severity":"bogus"},
			{}
		]}
	]}`)

	s := SummarizeVulnerabilities(raw)
	if s == nil {
		t.Fatal("expected a summary for a recognized report")
	}
	if s.Counts[SeverityCritical] != 1 || s.Counts[SeverityHigh] != 2 || s.Counts[SeverityLow] != 1 {
		t.Errorf("unexpected counts: %v", s.Counts)
	}
	// bogus label and missing label both fold into UNKNOWN
	if s.Counts[SeverityUnknown] != 2 {
		t.Errorf("expected 2 UNKNOWN, got %d", s.Counts[SeverityUnknown])
	}

	sum := 0
	for _, n := range s.Counts {
		sum += n
	}
	if s.Total != sum {
		t.Errorf("Total %d must equal sum of counts %d", s.Total, sum)
	}
}

func TestSummarizeVulnerabilitiesLowercaseSeverity(t *testing.T) {
	s := SummarizeVulnerabilities([]byte(`{"Results":[{"Vulnerabilities":[{"Severity":"critical"}]}]}`))
	if s == nil {
		t.Fatal("expected a summary")
	}
	if s.Counts[SeverityCritical] != 1 {
		t.Errorf("lowercase severity must count under CRITICAL, got %v", s.Counts)
	}
}

func TestSummarizeVulnerabilitiesZeroFindings(t *testing.T) {
	s := SummarizeVulnerabilities([]byte(`{"Results":[]}`))
	if s == nil {
		t.Fatal("an empty Results array is still a recognized report")
	}
	if s.Total != 0 {
		t.Errorf("expected zero findings, got %d", s.Total)
	}
}

func TestSummarizeVulnerabilitiesUnrecognized(t *testing.T) {
	cases := []string{
		`[]`,                 // not an object
		`{}`,                 // Results missing
		`{"Results":"oops"}`, // Results not an array
		`42`,
		`"text"`,
	}
	for _, raw := range cases {
		if s := SummarizeVulnerabilities([]byte(raw)); s != nil {
			t.Errorf("expected nil summary for %s, got %+v", raw, s)
		}
	}
}
