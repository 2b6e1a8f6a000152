package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/oarkflow/json"
)

const testInterchange = "ISA*00*          *00*          *ZZ*SUBMITTER      *ZZ*RECEIVER       *230101*1200*^*00501*000000001*0*P*:~" +
	"GS*HC*SUBMITTER*RECEIVER*20230101*1200*1*X*005010X222A1~" +
	"ST*837*0001~" +
	"BHT*0019*00*REF1*20230101*1200~" +
	"HL*1**20*1~" +
	"NM1*85*2*ACME CLINIC*****XX*1234567890~" +
	"HL*2*1*22*0~" +
	"SBR*P*18*******CI~" +
	"NM1*IL*1*DOE*JANE****MI*MEMBER1~" +
	"CLM*CLAIM001*150***11:B:1*Y*A*Y*Y~" +
	"LX*1~" +
	"SV1*HC:99213*150*UN*1~" +
	"DTP*472*D8*20230116~"

func TestHealthz(t *testing.T) {
	s := New(nil)
	req := httptest.NewRequest("GET", "/healthz", nil)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
}

func TestParseEndpoint(t *testing.T) {
	s := New(nil)
	req := httptest.NewRequest("POST", "/parse", strings.NewReader(testInterchange))
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var out ParseResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ControlNumber != "000000001" {
		t.Fatalf("control number: got %q", out.ControlNumber)
	}
	if out.ClaimCount != 1 || len(out.Claims) != 1 {
		t.Fatalf("claim count: got %d (%d claims)", out.ClaimCount, len(out.Claims))
	}
}

func TestParseEndpointRejectsEmptyBody(t *testing.T) {
	s := New(nil)
	req := httptest.NewRequest("POST", "/parse", strings.NewReader("   "))
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
}

func TestRunsWithoutConfig(t *testing.T) {
	s := New(nil)
	req := httptest.NewRequest("POST", "/runs", nil)
	resp, err := s.App().Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != 503 {
		t.Fatalf("status: got %d", resp.StatusCode)
	}
}
