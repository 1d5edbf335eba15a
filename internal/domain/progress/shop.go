package progress

import (
	"fmt"
	"math"

	"github.com/younwookim/nightlight/internal/infrastructure/config"
)

// Purchase identifies a shop item.
type Purchase int

const (
	FlashlightAngle Purchase = iota
	FlashlightRange
	BuyTorch
	TorchRange
	TorchOnSeconds
	TorchOffSeconds
)

// Purchases lists every item in display order.
var Purchases = []Purchase{
	FlashlightAngle,
	FlashlightRange,
	BuyTorch,
	TorchRange,
	TorchOnSeconds,
	TorchOffSeconds,
}

func (p Purchase) String() string {
	switch p {
	case FlashlightAngle:
		return "FlashlightAngle"
	case FlashlightRange:
		return "FlashlightRange"
	case BuyTorch:
		return "BuyTorch"
	case TorchRange:
		return "TorchRange"
	case TorchOnSeconds:
		return "TorchOnSeconds"
	case TorchOffSeconds:
		return "TorchOffSeconds"
	default:
		return "Unknown"
	}
}

// Offer is one line of the shop screen.
type Offer struct {
	Purchase  Purchase
	Label     string
	Cost      int
	Visible   bool
	Available bool
}

// Shop applies purchases to a GameState. A purchase that is capped,
// unaffordable or missing its prerequisite changes nothing.
type Shop struct {
	cfg config.ShopConfig
}

// NewShop creates a shop with the given prices and caps.
func NewShop(cfg config.ShopConfig) *Shop {
	return &Shop{cfg: cfg}
}

// Cost returns the price of p.
func (s *Shop) Cost(p Purchase) int {
	if p == BuyTorch {
		return s.cfg.TorchCost
	}
	return s.cfg.UpgradeCost
}

// Maxed reports whether p has reached its cap.
func (s *Shop) Maxed(g *GameState, p Purchase) bool {
	switch p {
	case FlashlightAngle:
		return 2*g.Flashlight.Angle*180/math.Pi >= s.cfg.MaxConeDegrees
	case FlashlightRange:
		return g.Flashlight.Range >= s.cfg.MaxFlashlightRange
	case BuyTorch:
		return g.Torch != nil
	case TorchRange:
		return g.Torch != nil && g.Torch.Range >= s.cfg.MaxTorchRange
	case TorchOffSeconds:
		return g.Torch != nil && g.Torch.OffSeconds <= s.cfg.MinTorchOff
	}
	return false
}

// CanBuy reports whether p would succeed.
func (s *Shop) CanBuy(g *GameState, p Purchase) bool {
	switch p {
	case TorchRange, TorchOnSeconds, TorchOffSeconds:
		if g.Torch == nil {
			return false
		}
	}
	return !s.Maxed(g, p) && g.Currency() >= s.Cost(p)
}

// Buy applies p and charges for it. Returns false, leaving g untouched, when
// the purchase is not allowed.
func (s *Shop) Buy(g *GameState, p Purchase) bool {
	if !s.CanBuy(g, p) {
		return false
	}

	switch p {
	case FlashlightAngle:
		g.Flashlight.Angle += s.cfg.AngleStep
	case FlashlightRange:
		g.Flashlight.Range += s.cfg.RangeStep
	case BuyTorch:
		g.Torch = &Torch{
			Range:      s.cfg.TorchRange,
			OnSeconds:  s.cfg.TorchOnSeconds,
			OffSeconds: s.cfg.TorchOffSeconds,
		}
	case TorchRange:
		g.Torch.Range += s.cfg.RangeStep
	case TorchOnSeconds:
		g.Torch.OnSeconds += s.cfg.OnStep
	case TorchOffSeconds:
		g.Torch.OffSeconds -= s.cfg.OffStep
	default:
		return false
	}

	g.Spent += s.Cost(p)
	return true
}

// Offers describes every purchase for the shop screen.
func (s *Shop) Offers(g *GameState) []Offer {
	offers := make([]Offer, 0, len(Purchases))
	for _, p := range Purchases {
		o := Offer{
			Purchase:  p,
			Cost:      s.Cost(p),
			Available: s.CanBuy(g, p),
			Visible:   !s.Maxed(g, p),
		}
		switch p {
		case FlashlightAngle:
			o.Label = fmt.Sprintf("Angle: %.0f degrees", math.Floor(2*g.Flashlight.Angle*180/math.Pi))
		case FlashlightRange:
			o.Label = fmt.Sprintf("Range: %.0f", g.Flashlight.Range)
		case BuyTorch:
			o.Label = "Buy a Torch"
		case TorchRange, TorchOnSeconds, TorchOffSeconds:
			if g.Torch == nil {
				o.Visible = false
				break
			}
			switch p {
			case TorchRange:
				o.Label = fmt.Sprintf("Torch range: %.0f", g.Torch.Range)
			case TorchOnSeconds:
				o.Label = fmt.Sprintf("Torch duration: %.1f", g.Torch.OnSeconds)
			default:
				o.Label = fmt.Sprintf("Torch cooldown: %.1f", g.Torch.OffSeconds)
			}
		}
		offers = append(offers, o)
	}
	return offers
}
