package staketax

import (
	"fmt"
	"strings"
	"testing"
)

const krakenSample = `txid,refid,time,type,subtype,aclass,asset,amount,fee,balance
L1,R1,2021-08-01 12:00:00,staking,,currency,ETH2.S,0.01,0,0.01
L2,R2,2021-08-02 09:15:00,trade,,currency,XXBT,0.5,0.001,0.5
L3,R3,2021-08-03 12:00:00,deposit,,currency,DOT,10,0,10
L4,R4,2021-08-04 12:00:00,staking,,currency,DOT.S,1.25,0,1.25
`

func TestKrakenParse(t *testing.T) {
	records, err := KrakenParser{}.Parse(strings.NewReader(krakenSample))
	if err != nil {
		t.Fatalf("Parse() returned error %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Parse() returned %d records, want 2", len(records))
	}
	if records[0].Coin != ETH {
		t.Errorf("first Coin = %q, want ETH", records[0].Coin)
	}
	if !records[0].Amount.Equal(Q(0.01)) {
		t.Errorf("first Amount = %s, want 0.01", records[0].Amount)
	}
	if records[1].Coin != DOT {
		t.Errorf("second Coin = %q, want DOT", records[1].Coin)
	}
}

// The number of records depends only on the reward-typed rows, wherever the
// non-reward rows sit in the export.
func TestKrakenParse_countIgnoresNonRewardRows(t *testing.T) {
	header := "txid,refid,time,type,subtype,aclass,asset,amount,fee,balance\n"
	reward := func(i int) string {
		return fmt.Sprintf("L%d,R,2021-08-0%d 12:00:00,staking,,currency,KSM.S,0.1,0,0.1\n", i, i%9+1)
	}
	trade := func(i int) string {
		return fmt.Sprintf("T%d,R,2021-08-0%d 12:00:00,trade,,currency,XXBT,0.5,0.001,0.5\n", i, i%9+1)
	}

	interleavings := []string{
		header + reward(1) + reward(2) + reward(3) + trade(1) + trade(2),
		header + trade(1) + reward(1) + trade(2) + reward(2) + reward(3),
		header + trade(1) + trade(2) + reward(1) + reward(2) + reward(3),
	}
	for i, input := range interleavings {
		records, err := KrakenParser{}.Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("interleaving %d: Parse() returned error %v", i, err)
		}
		if len(records) != 3 {
			t.Errorf("interleaving %d: Parse() returned %d records, want 3", i, len(records))
		}
	}
}

func TestKrakenParse_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "missing asset column",
			input: "txid,time,type,amount\nL1,2021-08-01 12:00:00,staking,0.01\n",
		},
		{
			name:  "reward row with bad timestamp",
			input: "time,type,asset,amount\nyesterday,staking,DOT.S,0.01\n",
		},
		{
			name:  "reward row with bad amount",
			input: "time,type,asset,amount\n2021-08-01 12:00:00,staking,DOT.S,lots\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (KrakenParser{}).Parse(strings.NewReader(tc.input)); err == nil {
				t.Error("Parse() = nil error, want error")
			}
		})
	}
}

// A malformed non-reward row must not abort the run: it is skipped before
// its fields are ever parsed.
func TestKrakenParse_badTradeRowIsSkipped(t *testing.T) {
	input := "time,type,asset,amount\nnot-a-date,trade,XXBT,whatever\n2021-08-01 12:00:00,staking,DOT.S,0.01\n"
	records, err := KrakenParser{}.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() returned error %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Parse() returned %d records, want 1", len(records))
	}
}
