package announce

import (
	"testing"

	"github.com/flarebot/saleswatch/internal/marketdir"
	"github.com/flarebot/saleswatch/internal/salesfeed"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMessageComposer_Compose(t *testing.T) {
	composer := MessageComposer{
		CollectionName: "Lifinity Flare",
		TopicTags:      []string{"#NFTs", "#Solana"},
	}

	sale := salesfeed.Sale{
		TxID:         "sig-1",
		NFTID:        "1234",
		BuyerHandle:  "alice",
		SellerHandle: "bob",
		Price:        decimal.NewFromFloat(12.5),
		Marketplace:  &marketdir.Marketplace{DisplayName: "Magic Eden"},
	}

	t.Run("renders the full template when every clause has data", func(t *testing.T) {
		floor := decimal.NewFromFloat(3.456)

		got := composer.Compose(sale, &floor)

		want := "@alice just purchased Lifinity Flare #1234\n" +
			"from @bob on Magic Eden for ◎12.50! (floor ◎3.46)\n" +
			"\nTransaction details 👉 https://solscan.io/tx/sig-1\n" +
			"\n#NFTs #Solana"
		assert.Equal(t, want, got)
	})

	t.Run("falls back to Someone when the buyer handle is empty", func(t *testing.T) {
		anonymous := sale
		anonymous.BuyerHandle = ""

		got := composer.Compose(anonymous, nil)

		assert.Contains(t, got, "Someone just purchased Lifinity Flare #1234")
		assert.NotContains(t, got, "@alice")
	})

	t.Run("omits the seller clause when the seller handle is empty", func(t *testing.T) {
		noSeller := sale
		noSeller.SellerHandle = ""

		got := composer.Compose(noSeller, nil)

		assert.NotContains(t, got, "from @")
		assert.Contains(t, got, "on Magic Eden for ◎12.50!")
	})

	t.Run("uses the chain name as venue when the marketplace is unresolved", func(t *testing.T) {
		unresolved := sale
		unresolved.Marketplace = nil

		got := composer.Compose(unresolved, nil)

		assert.Contains(t, got, "on Solana for ◎12.50!")
	})

	t.Run("omits the floor clause when no floor price is available", func(t *testing.T) {
		got := composer.Compose(sale, nil)

		assert.NotContains(t, got, "floor")
	})

	t.Run("renders prices with exactly two fraction digits", func(t *testing.T) {
		whole := sale
		whole.Price = decimal.NewFromInt(3)

		got := composer.Compose(whole, nil)

		assert.Contains(t, got, "for ◎3.00!")
	})

	t.Run("honors a custom explorer base URL", func(t *testing.T) {
		custom := composer
		custom.ExplorerTxURL = "https://explorer.example/tx/"

		got := custom.Compose(sale, nil)

		assert.Contains(t, got, "https://explorer.example/tx/sig-1")
	})

	t.Run("omits the tag line when no tags are configured", func(t *testing.T) {
		untagged := composer
		untagged.TopicTags = nil

		got := untagged.Compose(sale, nil)

		assert.NotContains(t, got, "#NFTs")
		assert.Equal(t, "\n", got[len(got)-1:])
	})
}
