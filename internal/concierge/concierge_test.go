package concierge

import (
	"context"
	"strings"
	"testing"

	"credema/pkg/domain"
)

func TestSystemInstructionFoldsInBlogKnowledge(t *testing.T) {
	posts := domain.SeedPosts()
	prompt := SystemInstruction(domain.LangEN, posts)

	if !strings.Contains(prompt, "CREDEMA.Finance") {
		t.Fatal("prompt must name the platform")
	}
	if !strings.Contains(prompt, "agent/intermediary, not a lender") {
		t.Fatal("prompt must carry the intermediary rule")
	}
	if !strings.Contains(prompt, "The Distribution Bottleneck") {
		t.Fatal("prompt missing blog title")
	}
	if !strings.Contains(prompt, "building software is cheap") {
		t.Fatal("prompt missing blog excerpt")
	}
}

func TestSystemInstructionLocalizes(t *testing.T) {
	posts := domain.SeedPosts()

	de := SystemInstruction(domain.LangDE, posts)
	if !strings.Contains(de, "auf Deutsch") {
		t.Fatal("German instruction not selected")
	}
	if !strings.Contains(de, "Der Vertriebs-Engpass") {
		t.Fatal("German blog title not selected")
	}

	// Unknown language falls back to English.
	es := SystemInstruction(domain.Language("es"), posts)
	if !strings.Contains(es, "Respond professionally in English") {
		t.Fatal("unknown language should fall back to the English instruction")
	}
}

func TestSystemInstructionWithoutPosts(t *testing.T) {
	prompt := SystemInstruction(domain.LangEN, nil)
	if !strings.Contains(prompt, "General scientific finance principles.") {
		t.Fatal("empty library needs the generic knowledge line")
	}
}

func TestSystemInstructionUsesPlaceholderForUntitledPost(t *testing.T) {
	posts := []domain.BlogPost{{ID: "x", Excerpt: domain.Localized{domain.LangEN: "No title here."}}}
	prompt := SystemInstruction(domain.LangEN, posts)
	if !strings.Contains(prompt, untitledPlaceholder) {
		t.Fatal("untitled post should use the placeholder title")
	}
}

func TestDealBriefing(t *testing.T) {
	deal := domain.SeedDeals()[0]
	briefing := DealBriefing(deal)

	for _, want := range []string{
		"NovaSynthetix AI",
		deal.Context.Problem,
		deal.Context.Solution,
		deal.Context.UseOfFunds,
		"24 months",
	} {
		if !strings.Contains(briefing, want) {
			t.Fatalf("briefing missing %q:\n%s", want, briefing)
		}
	}
}

type cannedGenerator struct {
	lastSystem string
	lastUser   string
	answer     string
}

func (g *cannedGenerator) GenerateText(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	g.lastSystem = systemPrompt
	g.lastUser = userPrompt
	return g.answer, nil
}

func TestAdvisorAskAttachesInstructionAndKnowledge(t *testing.T) {
	gen := &cannedGenerator{answer: "Leverage funds distribution."}
	advisor := NewAdvisor(gen)

	answer, err := advisor.Ask(context.Background(), domain.LangFR, domain.SeedPosts(), "Comment ça marche ?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "Leverage funds distribution." {
		t.Fatalf("unexpected answer: %q", answer)
	}
	if !strings.Contains(gen.lastSystem, "en français") {
		t.Fatal("French instruction not forwarded")
	}
	if gen.lastUser != "Comment ça marche ?" {
		t.Fatalf("question not forwarded verbatim: %q", gen.lastUser)
	}
}

func TestBookingLink(t *testing.T) {
	link := BookingLink("NovaSynthetix AI")

	if !strings.HasPrefix(link, "https://calendar.google.com/calendar/u/0/r/eventedit?") {
		t.Fatalf("unexpected link base: %q", link)
	}
	if !strings.Contains(link, "text=CREDEMA+Intro+Call%3A+NovaSynthetix+AI") {
		t.Fatalf("company name not encoded into title: %q", link)
	}
	if !strings.Contains(link, "location=Google+Meet") {
		t.Fatalf("location missing: %q", link)
	}
}
