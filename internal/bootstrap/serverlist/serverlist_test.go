package serverlist

import "testing"

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<Chars>
  <Servers>
    <Server>
      <Name>USEast</Name>
      <DNS>usesouth.appspot.com</DNS>
    </Server>
    <Server>
      <Name>USWest3</Name>
      <DNS>uswest3.appspot.com</DNS>
    </Server>
    <Server>
      <Name>Australia</Name>
      <DNS>aus.appspot.com</DNS>
    </Server>
  </Servers>
</Chars>`

func TestParseResolvesFullNameAndAbbreviation(t *testing.T) {
	list, err := Parse([]byte(sampleDocument), "USEast")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	host, ok := list.Get("USEast")
	if !ok || host != "usesouth.appspot.com" {
		t.Fatalf("Get(USEast) = %q, %v", host, ok)
	}

	abbr, ok := list.Get(abbreviate("USEast"))
	if !ok || abbr != "usesouth.appspot.com" {
		t.Fatalf("Get(%s) = %q, %v", abbreviate("USEast"), abbr, ok)
	}
}

func TestParseDefaultServer(t *testing.T) {
	list, err := Parse([]byte(sampleDocument), "USWest3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if list.Default() != "uswest3.appspot.com" {
		t.Fatalf("Default() = %q", list.Default())
	}
}

func TestParseUnknownDefaultServer(t *testing.T) {
	_, err := Parse([]byte(sampleDocument), "EUWest1")
	if err == nil {
		t.Fatal("expected an error for an unknown default server")
	}
}

func TestParseMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("not xml at all"), "USEast")
	if err == nil {
		t.Fatal("expected an error for a malformed document")
	}
}

func TestAbbreviate(t *testing.T) {
	cases := map[string]string{
		"USEast":    "use",
		"USWest3":   "usw3",
		"Australia": "aus",
		"EUSouth":   "eus",
		"AsiaMid":   "asm",
	}
	for in, want := range cases {
		if got := abbreviate(in); got != want {
			t.Errorf("abbreviate(%q) = %q, want %q", in, got, want)
		}
	}
}
