package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ecowatt/solardevis/internal/models"
)

// Analyzer turns a quoted profile into a narrative analysis. Every failure
// mode degrades to a user-facing French message: the quote and its totals
// must stay fully usable when the narrative is not.
type Analyzer struct {
	gen Generator
}

// NewAnalyzer wraps a generator. A nil generator means no credential is
// configured; Analyze then returns an explanatory message instead of
// calling out.
func NewAnalyzer(gen Generator) *Analyzer {
	return &Analyzer{gen: gen}
}

// Enabled reports whether a generation backend is configured.
func (a *Analyzer) Enabled() bool { return a.gen != nil }

// Analyze requests the narrative for a quote. It never returns an error:
// callers always get displayable text, either the analysis or a fallback
// explaining why it is unavailable.
func (a *Analyzer) Analyze(ctx context.Context, p models.ClientProfile, sizing models.SizingResult, sum models.FinancialSummary, cfg models.QuoteConfig) string {
	if a.gen == nil {
		return "Analyse IA désactivée : aucune clé API configurée. " +
			"Renseignez GEMINI_API_KEY dans votre fichier .env pour activer l'analyse automatique."
	}

	text, err := a.gen.Generate(ctx, BuildPrompt(p, sizing, sum, cfg))
	if err != nil {
		log.Printf("narrative generation failed: %v", err)
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			return fmt.Sprintf("Désolé, l'analyse automatique n'est pas disponible pour le moment (erreur du service, HTTP %d : %s).",
				svcErr.StatusCode, svcErr.Message)
		}
		return fmt.Sprintf("Désolé, l'analyse automatique n'est pas disponible pour le moment (connexion au service impossible : %v).", err)
	}
	return text
}
