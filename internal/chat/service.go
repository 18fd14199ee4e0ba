// README: Chat pipeline; classifies, extracts, searches, validates, composes.
package chat

import (
	"context"

	"github.com/sirupsen/logrus"

	"tripagent/internal/ai"
	"tripagent/internal/intent"
	"tripagent/internal/search"
	"tripagent/internal/userctx"
	"tripagent/internal/weather"
)

// Service is the intent-resolution and result-validation pipeline behind the
// chat endpoint. All state is per-turn; the service itself is immutable after
// construction and safe for concurrent use.
type Service struct {
	parser    *intent.Parser
	extractor *intent.Extractor
	composer  *Composer
	searcher  search.Searcher
	users     userctx.Provider
	weather   weather.Service
	log       *logrus.Entry
}

// Deps are the collaborators the pipeline consumes. Provider may be nil when
// no generative credentials are configured; every dependent path then uses
// its rule-based or canned fallback.
type Deps struct {
	Provider ai.Provider
	Searcher search.Searcher
	Users    userctx.Provider
	Weather  weather.Service
	Logger   *logrus.Logger
}

func NewService(deps Deps) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("component", "chat")

	parser := intent.NewParser()
	return &Service{
		parser:    parser,
		extractor: intent.NewExtractor(deps.Provider, parser, logger.WithField("component", "intent")),
		composer:  NewComposer(deps.Provider, logger.WithField("component", "composer")),
		searcher:  deps.Searcher,
		users:     deps.Users,
		weather:   deps.Weather,
		log:       log,
	}
}

// Respond resolves one chat turn. It never returns an error: every failure
// below the transport layer degrades to a less specific but still useful
// reply, and an unexpected panic becomes a generic apology.
func (s *Service) Respond(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("chat pipeline panicked")
			resp = Response{Reply: apologyReply}
		}
	}()

	user := s.fetchUser(ctx, req)
	queryType := intent.Classify(req.Message)
	s.log.WithFields(logrus.Fields{"query_type": queryType, "has_user": user != nil}).Info("classified message")

	switch queryType {
	case intent.QueryBookingDetails:
		return Response{Reply: s.bookingDetailsReply(ctx, req)}
	case intent.QueryTripPlanning:
		return Response{Reply: planningReply(req.Message)}
	case intent.QueryTripSuggestions:
		return Response{Reply: s.suggestionsReply(ctx, user)}
	case intent.QueryWeather:
		return Response{Reply: s.weatherReply(ctx, req.Message)}
	}

	// Extraction runs only for search-classified messages: the rule parser
	// defaults unclear text to flights, which must not turn small talk into
	// a collaborator search.
	var in intent.Intent
	var validated search.ValidatedSet
	searched := false
	if queryType == intent.QuerySearch {
		in = s.extractor.Extract(ctx, req.Message)
	}
	if in.IsSearch() {
		searched = true
		raw, err := s.searcher.Search(ctx, in.Kind, in.Params)
		if err != nil {
			// Collaborator trouble is indistinguishable from "no results"
			// for the user; validation below sees an empty list.
			s.log.WithError(err).WithField("kind", in.Kind).Warn("collaborator search failed")
			raw = nil
		}
		validated = search.Validate(in.Kind, in.Params, raw)
		s.log.WithFields(logrus.Fields{
			"kind":     in.Kind,
			"kept":     len(validated.Items),
			"rejected": validated.RejectedCount,
		}).Info("validated search results")
	}

	reply := s.composer.Compose(ctx, ComposeInput{
		Query:     queryType,
		Intent:    in,
		Searched:  searched,
		Validated: validated,
		Message:   req.Message,
		History:   req.History,
		User:      user,
	})

	resp = Response{Reply: reply}
	if searched {
		resp.SearchKind = in.Kind
		if !validated.Empty() {
			resp.Results = map[string][]search.Result{string(in.Kind): validated.Items}
		}
	}
	return resp
}

// SmartSearch parses the message rule-based only and returns raw collaborator
// results, for the debug-flavored /api/search endpoint.
func (s *Service) SmartSearch(ctx context.Context, message string) (intent.Intent, []search.Result, error) {
	parsed := s.parser.Parse(message)
	results, err := s.searcher.Search(ctx, parsed.Kind, parsed.Params)
	if err != nil {
		return parsed, nil, err
	}
	if len(results) > 20 {
		results = results[:20]
	}
	return parsed, results, nil
}

// ParseIntent exposes the rule-based parse for the debug endpoint.
func (s *Service) ParseIntent(message string) intent.Intent {
	return s.parser.Parse(message)
}

func (s *Service) fetchUser(ctx context.Context, req Request) *userctx.Context {
	if req.UserID == "" || s.users == nil {
		return nil
	}
	user, err := s.users.Fetch(ctx, req.UserID, req.Token)
	if err != nil {
		s.log.WithError(err).WithField("user_id", req.UserID).Debug("user context fetch failed")
		return nil
	}
	return user
}
