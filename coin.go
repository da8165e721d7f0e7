package staketax

import (
	"fmt"
	"strings"
)

// Coin is a canonical asset symbol, after exchange-specific staking-suffix
// notation has been stripped.
type Coin string

const (
	DOT  Coin = "DOT"
	KSM  Coin = "KSM"
	ATOM Coin = "ATOM"
	ETH  Coin = "ETH"
	SOL  Coin = "SOL"
	KAVA Coin = "KAVA"
	ADA  Coin = "ADA"
	XTZ  Coin = "XTZ"
)

// canonical is the set of known base assets. Adding a coin here is all it
// takes to make its staked variants normalize.
var canonical = map[Coin]bool{
	DOT:  true,
	KSM:  true,
	ATOM: true,
	ETH:  true,
	SOL:  true,
	KAVA: true,
	ADA:  true,
	XTZ:  true,
}

// Normalize maps a raw source ticker to its canonical coin symbol.
//
// Tickers ending in the staking marker ".S" lose the marker and, when the
// remaining base is a known coin, any trailing variant digit ("ETH2.S" and
// "DOT.S" become "ETH" and "DOT"). Unknown tickers pass through verbatim:
// a novel but valid asset must not make a conversion fail.
func Normalize(raw string) Coin {
	s := strings.ToUpper(strings.TrimSpace(raw))
	staked := strings.HasSuffix(s, ".S")
	s = strings.TrimSuffix(s, ".S")
	if base := Coin(strings.TrimRight(s, "0123456789")); canonical[base] {
		return base
	}
	if staked {
		return Coin(s)
	}
	return Coin(raw)
}

// ParseCoin validates a configured coin symbol against the known canonical
// set. Unlike Normalize, an unknown symbol here is a configuration error.
func ParseCoin(s string) (Coin, error) {
	c := Coin(strings.ToUpper(strings.TrimSpace(s)))
	if !canonical[c] {
		return "", fmt.Errorf("unknown coin %q", s)
	}
	return c, nil
}
