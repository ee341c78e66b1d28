// Package concierge assembles the contextual strings handed to the
// generative-model API: the per-language advisor instruction, the blog
// knowledge digest, and per-deal briefings. The model itself is an
// opaque collaborator behind ai.TextGenerator.
package concierge

import (
	"context"
	"fmt"
	"strings"

	"credema/pkg/ai"
	"credema/pkg/domain"
)

// untitledPlaceholder stands in for a post with no usable title in any
// locale.
const untitledPlaceholder = "Intelligence Node"

var advisorInstructions = map[domain.Language]string{
	domain.LangEN: `You are the CREDEMA.Finance AI Advisor. Respond professionally in English.
Important: CREDEMA.Finance is a portal and agent that connects seekers with lenders. It does not provide financing itself.
- Founder: Needs leverage for growth, provides escrow deposit.
- Seed Investor: Validates product.
- Leverage Provider: Funds distribution.`,
	domain.LangDE: `Sie sind der CREDEMA.Finance AI Advisor. Antworten Sie professionell auf Deutsch.
Wichtig: CREDEMA.Finance ist ein Portal und Agent, der Suchende mit Gebern verbindet. Es stellt selbst keine Finanzierung bereit.
- Gründer: Benötigt Hebel für Wachstum, stellt Escrow-Einlage bereit.
- Seed-Investor: Validiert das Produkt.
- Fremdkapitalgeber: Finanziert den Vertrieb.`,
	domain.LangFR: `Vous êtes le conseiller IA de CREDEMA.Finance. Répondez professionnellement en français.
Important : CREDEMA.Finance est un portail et un agent qui connecte les demandeurs avec les prêteurs. Il ne fournit pas de financement lui-même.
- Fondateur : Besoin de levier pour la croissance, fournit un dépôt de garantie (escrow).
- Investisseur Seed : Valide le produit.
- Fournisseur de levier : Finance la distribution.`,
}

// SystemInstruction builds the advisor's system prompt for a language,
// folding the blog library in as market knowledge.
func SystemInstruction(lang domain.Language, posts []domain.BlogPost) string {
	instruction, ok := advisorInstructions[lang]
	if !ok {
		instruction = advisorInstructions[domain.FallbackLanguage]
	}

	var knowledge []string
	for _, post := range posts {
		title := post.Title.GetOr(lang, untitledPlaceholder)
		excerpt := post.Excerpt.Get(lang)
		knowledge = append(knowledge, fmt.Sprintf("- %q: %s", title, excerpt))
	}
	knowledgeBlock := strings.Join(knowledge, "\n")
	if knowledgeBlock == "" {
		knowledgeBlock = "General scientific finance principles."
	}

	return instruction + `

RULES:
- Always refer to the platform as CREDEMA.Finance.
- Clarify that CREDEMA.Finance is an agent/intermediary, not a lender.
- Escrow: Founders deposit 10-20%.
- Use of Funds: Strictly for growth/distribution.

MARKET KNOWLEDGE (BASED ON INTELLIGENCE LIBRARY):
` + knowledgeBlock
}

// DealBriefing flattens one deal's context block for opportunity chat.
func DealBriefing(deal domain.Deal) string {
	return strings.Join([]string{
		fmt.Sprintf("Company: %s (%s, %s)", deal.CompanyName, deal.Sector, deal.Stage),
		"Problem: " + deal.Context.Problem,
		"Solution: " + deal.Context.Solution,
		"Market strategy: " + deal.Context.MarketStrategy,
		"Competition: " + deal.Context.Competition,
		"Team: " + deal.Context.TeamBackground,
		"Use of funds: " + deal.Context.UseOfFunds,
		fmt.Sprintf("Facility: %.0f leverage over %d months, %.0f deposit in escrow.",
			deal.LeverageAmount, deal.TermMonths, deal.DepositAmount),
	}, "\n")
}

// Advisor answers visitor questions through a text generator.
type Advisor struct {
	gen ai.TextGenerator
}

// NewAdvisor wraps a generator.
func NewAdvisor(gen ai.TextGenerator) *Advisor {
	return &Advisor{gen: gen}
}

// Ask sends one question with the language's system instruction and
// blog knowledge attached.
func (a *Advisor) Ask(ctx context.Context, lang domain.Language, posts []domain.BlogPost, question string) (string, error) {
	return a.gen.GenerateText(ctx, SystemInstruction(lang, posts), question)
}
