package staketax

import (
	"strings"
	"testing"
)

const staketaxSample = `timestamp,tx_type,taxable,received_amount,received_currency,sent_amount,sent_currency,fee,fee_currency,comment,txid,url,exchange,wallet_address
2021-03-02 08:00:00,STAKING,true,0.5,ATOM,,,,,,tx1,,cosmos_lcd,cosmos1xyz
2021-03-03 08:00:00,TRANSFER,false,,,10,ATOM,0.01,ATOM,,tx2,,cosmos_lcd,cosmos1xyz
2021-03-04 08:00:00,STAKING,true,,ATOM,,,,,,tx3,,cosmos_lcd,cosmos1xyz
`

func TestStakeTaxParse(t *testing.T) {
	records, err := StakeTaxParser{Coin: ATOM}.Parse(strings.NewReader(staketaxSample))
	if err != nil {
		t.Fatalf("Parse() returned error %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}
	if records[0].Coin != ATOM {
		t.Errorf("Coin = %q, want ATOM", records[0].Coin)
	}
	if !records[0].Amount.Equal(Q(0.5)) {
		t.Errorf("Amount = %s, want 0.5", records[0].Amount)
	}
	// an empty received_amount means zero
	if !records[1].Amount.IsZero() {
		t.Errorf("empty received_amount parsed as %s, want 0", records[1].Amount)
	}
}

func TestStakeTaxParse_missingColumn(t *testing.T) {
	input := "timestamp,tx_type\n2021-03-02 08:00:00,STAKING\n"
	if _, err := (StakeTaxParser{Coin: ATOM}).Parse(strings.NewReader(input)); err == nil {
		t.Error("Parse() = nil error, want error")
	}
}
