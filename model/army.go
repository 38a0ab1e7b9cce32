package model

import (
	"fmt"
	"strings"
)

// Stack is one slot of an army: a number of identical creatures.
type Stack struct {
	Name    string  `json:"name" yaml:"name"`
	Count   int     `json:"count" yaml:"count"`
	Power   float64 `json:"power" yaml:"power"` // combat power of the whole stack
	Shooter bool    `json:"shooter" yaml:"shooter"`
	Flying  bool    `json:"flying" yaml:"flying"`
	Speed   int     `json:"speed" yaml:"speed"`
}

// SiteKind tells what an army is defending.
type SiteKind uint8

const (
	SiteField SiteKind = iota // wandering army or hero
	SiteBank                  // guarded high-value site
	SiteTown                  // settlement garrison, possibly behind walls
)

var siteNames = []string{"field", "bank", "town"}

func (k SiteKind) String() string {
	if int(k) < len(siteNames) {
		return siteNames[k]
	}
	return fmt.Sprintf("SiteKind(%d)", uint8(k))
}

func (k SiteKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *SiteKind) UnmarshalText(b []byte) error {
	for i, n := range siteNames {
		if strings.EqualFold(n, string(b)) {
			*k = SiteKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown site kind %q", b)
}

// WallLevel is a settlement's fortification tier.
type WallLevel int

const (
	WallNone WallLevel = iota
	WallFort
	WallCitadel
	WallCastle
)

var wallNames = []string{"none", "fort", "citadel", "castle"}

func (w WallLevel) String() string {
	if w >= 0 && int(w) < len(wallNames) {
		return wallNames[w]
	}
	return fmt.Sprintf("WallLevel(%d)", int(w))
}

func (w WallLevel) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *WallLevel) UnmarshalText(b []byte) error {
	for i, n := range wallNames {
		if strings.EqualFold(n, string(b)) {
			*w = WallLevel(i)
			return nil
		}
	}
	return fmt.Errorf("unknown wall level %q", b)
}

// Army is a roster of stacks plus what, if anything, it is guarding.
type Army struct {
	Stacks []Stack   `json:"stacks" yaml:"stacks"`
	Site   SiteKind  `json:"site,omitempty" yaml:"site,omitempty"`
	Walls  WallLevel `json:"walls,omitempty" yaml:"walls,omitempty"`
}

// Strength is the summed power of all stacks.
func (a Army) Strength() float64 {
	total := 0.0
	for _, s := range a.Stacks {
		total += s.Power
	}
	return total
}

func (a Army) IsBank() bool { return a.Site == SiteBank }

// WallLevel is the fortification the army fights behind. Only town
// garrisons have walls.
func (a Army) WallLevel() WallLevel {
	if a.Site != SiteTown {
		return WallNone
	}
	return a.Walls
}

// GuardConfig is one possible guard roll of a bank: Chance in percent and
// the total strength of that configuration.
type GuardConfig struct {
	Chance   int     `json:"chance" yaml:"chance"`
	Strength float64 `json:"strength" yaml:"strength"`
}

// EstimateBankDanger is the chance-weighted mean strength of the possible
// guard configurations.
func EstimateBankDanger(configs []GuardConfig) float64 {
	total, chance := 0.0, 0
	for _, c := range configs {
		total += c.Strength * float64(c.Chance)
		chance += c.Chance
	}
	return total / float64(max(chance, 1))
}
