// README: Response composition as an ordered fallback chain of strategies.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"tripagent/internal/ai"
	"tripagent/internal/intent"
	"tripagent/internal/search"
	"tripagent/internal/userctx"
)

// Canned fallback texts. Every composer branch terminates with one of these
// or a provider reply; a provider failure never reaches the transport layer.
const (
	apologyReply = "I'm sorry, I'm having trouble processing your request right now. Please try again later."

	helpMenuReply = "I'm here to help! You can ask me about:\n" +
		"• Searching for flights, hotels, or cars\n" +
		"• Your booking details (when logged in)\n" +
		"• Trip planning checklists\n" +
		"• Travel suggestions\n\n" +
		"What would you like to know?"

	highDemandReply = "I'm currently experiencing high demand. I can still help you search for flights, hotels, or cars. " +
		"Please try a specific search query like 'find flights to Chicago' or 'hotels in Sunnyvale'."

	highDemandQuestionReply = "I'd love to help with that question! However, I'm currently experiencing high demand and " +
		"can't access real-time information right now. For current weather, time, and destination details, I recommend " +
		"checking weather apps or official tourism websites.\n\nWould you like me to search for flights, hotels, or cars instead?"
)

// locationQuestionWords marks general questions that are about a place, so a
// quota fallback can still name the location the user asked about.
var locationQuestionWords = []string{
	"weather", "temperature", "time", "currency", "language",
	"population", "capital", "famous", "known for",
}

// ComposeInput carries everything the composer may consult for one turn.
type ComposeInput struct {
	Query     intent.QueryType
	Intent    intent.Intent
	Searched  bool
	Validated search.ValidatedSet
	Message   string
	History   []Message
	User      *userctx.Context
}

// composeState is the mutable state threaded through the strategy chain.
// converse records its provider error here so the canned strategy can pick
// wording by failure class.
type composeState struct {
	ComposeInput
	providerErr error
}

// strategy tries to produce the final reply; ok=false means "skip to the
// next one". Strategies run in a fixed order and the last one never skips.
type strategy struct {
	name  string
	apply func(ctx context.Context, st *composeState) (reply string, ok bool)
}

// Composer turns the pipeline's outcome into the user-facing reply.
type Composer struct {
	provider   ai.Provider // nil when no credentials are configured
	strategies []strategy
	log        *logrus.Entry
}

func NewComposer(provider ai.Provider, log *logrus.Entry) *Composer {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	c := &Composer{provider: provider, log: log}
	c.strategies = []strategy{
		{"announce results", c.announceResults},
		{"announce empty search", c.announceEmptySearch},
		{"provider chat", c.converse},
		{"canned fallback", c.canned},
	}
	return c
}

// Compose walks the strategy chain and returns the first reply produced.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) string {
	st := &composeState{ComposeInput: in}
	for _, s := range c.strategies {
		if reply, ok := s.apply(ctx, st); ok {
			c.log.WithField("strategy", s.name).Debug("composed reply")
			return reply
		}
	}
	// Unreachable: the canned strategy always applies.
	return apologyReply
}

// announceResults handles a successful search with validated results. It is
// deliberately templated rather than LLM-written: the reply must not wait on
// the provider, and a provider failure must not hide good results.
func (c *Composer) announceResults(_ context.Context, st *composeState) (string, bool) {
	if !st.Searched || st.Validated.Empty() {
		return "", false
	}
	return fmt.Sprintf("I found %d %s for you. Here are the results:", len(st.Validated.Items), st.Intent.Kind), true
}

// announceEmptySearch handles a search that was attempted but validated to
// nothing, naming the destination when one was extracted.
func (c *Composer) announceEmptySearch(_ context.Context, st *composeState) (string, bool) {
	if !st.Searched {
		return "", false
	}
	if dest := st.Intent.Params.Destination(); dest != "" {
		return fmt.Sprintf("I couldn't find any %s to %s. Please try a different destination or check your search parameters.",
			st.Intent.Kind, dest), true
	}
	return fmt.Sprintf("I couldn't find any %s matching your search. Please specify a destination or try different parameters.",
		st.Intent.Kind), true
}

// converse asks the provider for a conversational reply with the history and
// user context. On any failure it records the cause and skips.
func (c *Composer) converse(ctx context.Context, st *composeState) (string, bool) {
	if c.provider == nil {
		st.providerErr = ai.ErrNotConfigured
		return "", false
	}

	messages := make([]ai.Message, 0, len(st.History)+1)
	for _, m := range st.History {
		messages = append(messages, ai.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, ai.Message{Role: "user", Content: st.Message})

	reply, err := c.provider.Complete(ctx, buildSystemPrompt(st.User), messages)
	if err != nil {
		st.providerErr = err
		if ai.IsRateLimited(err) {
			c.log.WithError(err).Warn("provider quota exceeded, falling back to canned reply")
		} else {
			c.log.WithError(err).Warn("provider chat failed, falling back to canned reply")
		}
		return "", false
	}
	return reply, true
}

// canned picks a fallback message by failure class. Quota failures on a
// location-flavored question still name the place the user asked about.
func (c *Composer) canned(_ context.Context, st *composeState) (string, bool) {
	if ai.IsRateLimited(st.providerErr) {
		if isLocationQuestion(st.Message) {
			if loc := intent.ExtractLocation(st.Message); loc != "" {
				return locationFallback(loc), true
			}
			return highDemandQuestionReply, true
		}
		return highDemandReply, true
	}
	if st.Query == intent.QueryConversation {
		return helpMenuReply, true
	}
	return apologyReply, true
}

func isLocationQuestion(message string) bool {
	lower := strings.ToLower(message)
	for _, w := range locationQuestionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func locationFallback(location string) string {
	return fmt.Sprintf("I'd love to help you with information about %s! However, I'm currently experiencing high demand "+
		"and can't access real-time information right now. For current weather, time, and other details about %s, I recommend checking:\n"+
		"• Weather.com or your weather app\n"+
		"• TimeAndDate.com for timezone information\n"+
		"• Official tourism websites for destination information\n\n"+
		"Would you like me to search for flights, hotels, or cars in %s instead?", location, location, location)
}
