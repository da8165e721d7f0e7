package staketax

import (
	"strings"
	"testing"
)

func TestNewCoinTracking(t *testing.T) {
	if _, err := NewCoinTracking("USD"); err != nil {
		t.Errorf("NewCoinTracking(USD) returned error %v", err)
	}
	if _, err := NewCoinTracking("EUR"); err != nil {
		t.Errorf("NewCoinTracking(EUR) returned error %v", err)
	}
	if _, err := NewCoinTracking("SPACEBUCKS"); err == nil {
		t.Error("NewCoinTracking(SPACEBUCKS) = nil error, want error")
	}
}

func TestCoinTrackingRender(t *testing.T) {
	ct, err := NewCoinTracking("USD")
	if err != nil {
		t.Fatalf("NewCoinTracking() returned error %v", err)
	}

	var sb strings.Builder
	if err := ct.Render(&sb, []RewardRecord{rec(DOT, "2021-05-15 10:30:24", "1.5")}); err != nil {
		t.Fatalf("Render() returned error %v", err)
	}

	want := "Type,Buy Amount,Buy Currency,Sell Amount,Sell Currency,Fee,Fee Currency,Exchange,Trade-Group,Comment,Date,Tx-ID,Buy Value in Account Currency\n" +
		"Income,1.5,DOT,0,USD,0,USD,,DOT STAKING,staking reward,2021-05-15 10:30:24,,0\n"
	if got := sb.String(); got != want {
		t.Errorf("Render() = \n%s\nwant \n%s", got, want)
	}
}
