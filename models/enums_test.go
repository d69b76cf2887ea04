package models

import (
	"encoding/json"
	"testing"
)

func TestEnumDecode_RejectsUnknownValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		into func() error
	}{
		{"customer status", `"SUSPENDED"`, func() error { var v CustomerStatus; return json.Unmarshal([]byte(`"SUSPENDED"`), &v) }},
		{"transaction type", `"CHARGEBACK"`, func() error { var v TransactionType; return json.Unmarshal([]byte(`"CHARGEBACK"`), &v) }},
		{"payment method", `"CHEQUE"`, func() error { var v PaymentMethod; return json.Unmarshal([]byte(`"CHEQUE"`), &v) }},
		{"inventory status", `"BACKORDER"`, func() error { var v InventoryStatus; return json.Unmarshal([]byte(`"BACKORDER"`), &v) }},
		{"user role", `"SUPERUSER"`, func() error { var v UserRole; return json.Unmarshal([]byte(`"SUPERUSER"`), &v) }},
		{"complaint status", `"OPEN"`, func() error { var v ComplaintStatus; return json.Unmarshal([]byte(`"OPEN"`), &v) }},
		{"view", `"REPORTS"`, func() error { var v View; return json.Unmarshal([]byte(`"REPORTS"`), &v) }},
		{"non string", `42`, func() error { var v CustomerStatus; return json.Unmarshal([]byte(`42`), &v) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.into(); err == nil {
				t.Fatalf("decode of %s should fail", tc.doc)
			}
		})
	}
}

func TestEnumDecode_AcceptsKnownValues(t *testing.T) {
	var status CustomerStatus
	if err := json.Unmarshal([]byte(`"INACTIVE"`), &status); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if status != CustomerStatusInactive {
		t.Fatalf("expected INACTIVE, got %s", status)
	}

	var txType TransactionType
	if err := json.Unmarshal([]byte(`"REFUND"`), &txType); err != nil {
		t.Fatalf("REFUND is a valid stored type: %v", err)
	}
}

func TestDateDecode_AcceptsBothLayouts(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"2023-10-01"`, "2023-10-01"},
		{`"2023-10-01T15:04:05Z"`, "2023-10-01"},
	}
	for _, tc := range cases {
		var d Date
		if err := json.Unmarshal([]byte(tc.in), &d); err != nil {
			t.Fatalf("decode %s error: %v", tc.in, err)
		}
		if got := d.Format("2006-01-02"); got != tc.want {
			t.Fatalf("decode %s expected %s, got %s", tc.in, tc.want, got)
		}
	}

	var d Date
	if err := json.Unmarshal([]byte(`"01/10/2023"`), &d); err == nil {
		t.Fatalf("unknown date layout should fail")
	}
}

func TestMoneyDecode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`150`, "150"},
		{`45.5`, "45.5"},
		{`-20`, "-20"},
		{`"20,000"`, "20000"},
		{`"Rs 1,234.50"`, "1234.5"},
	}
	for _, tc := range cases {
		var m Money
		if err := json.Unmarshal([]byte(tc.in), &m); err != nil {
			t.Fatalf("decode %s error: %v", tc.in, err)
		}
		if m.String() != tc.want {
			t.Fatalf("decode %s expected %s, got %s", tc.in, tc.want, m.String())
		}
	}

	out, err := json.Marshal(MoneyFromInt(150))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(out) != "150" {
		t.Fatalf("money must marshal as a bare number, got %s", out)
	}
}
