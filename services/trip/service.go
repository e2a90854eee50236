// File: services/trip/service.go
package trip

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"wayfare/models"
	"wayfare/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	apologyReply = "I'm sorry, I'm having trouble responding right now. Could you send that again?"
	busyReply    = "I'm still putting your travel options together, one moment."
)

// ProcessMessage runs one conversational turn: the user message is appended,
// completion and extraction run concurrently, the extracted delta is merged
// into the running preferences, and a quick availability search may fire.
func (s *DefaultService) ProcessMessage(ctx context.Context, sessionID, text string) (*models.TripSession, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("message", "message text is required")
	}

	lock := s.locks.get(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if sess.State == models.StateGeneratingOptions {
		s.appendAssistant(sess, busyReply, nil)
		return sess, s.save(ctx, sess)
	}
	if sess.State == models.StateIdle {
		sess.State = models.StateAwaitingPreferences
	}

	sess.Transcript = append(sess.Transcript, newMessage(models.RoleUser, text, nil))

	var (
		wg         sync.WaitGroup
		reply      string
		replyErr   error
		delta      models.PreferenceDelta
		extractErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		reply, replyErr = s.AI.Complete(ctx, sess.Transcript, sess.Preferences)
	}()
	go func() {
		defer wg.Done()
		delta, _, extractErr = s.AI.Extract(ctx, sess.Transcript)
	}()
	wg.Wait()

	if replyErr != nil || extractErr != nil {
		utils.GetLogger().Error("Conversation turn failed",
			zap.String("session", sessionID),
			zap.NamedError("completion", replyErr),
			zap.NamedError("extraction", extractErr))
		s.appendAssistant(sess, apologyReply, nil)
		return sess, s.save(ctx, sess)
	}

	sess.Preferences.Merge(delta)

	assistant := newMessage(models.RoleAssistant, reply, nil)

	if s.shouldQuickSearch(sess) {
		// Mark in-flight and persist before the search so a parallel
		// message for this session cannot start a second one.
		sess.State = models.StateQuickSearchInFlight
		if err := s.save(ctx, sess); err != nil {
			return nil, err
		}

		snap, searchErr := s.Availability.QuickAvailability(ctx, sess.Preferences)
		if searchErr != nil {
			utils.GetLogger().Warn("Quick availability search failed",
				zap.String("session", sessionID), zap.Error(searchErr))
			sess.State = models.StateAwaitingPreferences
		} else {
			sess.Snapshot = snap
			sess.RefinementOffered = false
			sess.LastSearchedDestination = sess.Preferences.Destination
			sess.State = models.StateRefinementOffered
			// Surface the first derived follow-up question right in the
			// reply; the rest wait behind the insights action.
			if qs := snap.Analysis.SuggestedQuestions; len(qs) > 0 {
				assistant.Content = strings.TrimSpace(assistant.Content + "\n\n" + qs[0])
			}
			assistant.Actions = append(assistant.Actions, models.ChatAction{
				Label: "Show travel insights",
				Type:  models.ActionShowInsights,
			})
		}
	} else if s.shouldOfferOptions(sess) {
		assistant.Actions = append(assistant.Actions, models.ChatAction{
			Label: "Show travel options",
			Type:  models.ActionShowOptions,
		})
		sess.RefinementOffered = true
	}

	sess.Transcript = append(sess.Transcript, assistant)
	return sess, s.save(ctx, sess)
}

// shouldQuickSearch decides whether this turn triggers a fresh availability
// preview: origin, destination and departure date are all known, and either
// no snapshot exists yet or the destination moved since the last search.
func (s *DefaultService) shouldQuickSearch(sess *models.TripSession) bool {
	p := sess.Preferences
	if p.Origin == "" || p.Destination == "" || p.Dates.Departure == "" {
		return false
	}
	if sess.State == models.StateQuickSearchInFlight {
		return false
	}
	return sess.Snapshot == nil || p.Destination != sess.LastSearchedDestination
}

// shouldOfferOptions gates the "show travel options" action to at most one
// offer per snapshot, and never on the same turn the snapshot was built.
func (s *DefaultService) shouldOfferOptions(sess *models.TripSession) bool {
	if sess.Snapshot == nil || sess.RefinementOffered {
		return false
	}
	p := sess.Preferences
	return p.Destination != "" && p.Dates.Departure != ""
}

// TriggerAction resolves a chat action tag against the session.
func (s *DefaultService) TriggerAction(ctx context.Context, sessionID string, action models.ActionType) (*models.TripSession, error) {
	lock := s.locks.get(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	switch action {
	case models.ActionShowOptions:
		return s.generateOptions(ctx, sess)
	case models.ActionShowInsights:
		if sess.Snapshot == nil {
			return nil, models.NewValidationError("action", "no availability insights yet for this session")
		}
		s.appendAssistant(sess, insightsMessage(sess.Snapshot), nil)
		return sess, s.save(ctx, sess)
	case models.ActionContinue:
		s.appendAssistant(sess, "No problem, tell me more about your trip and I'll keep refining.", nil)
		return sess, s.save(ctx, sess)
	default:
		return nil, models.NewValidationError("action", fmt.Sprintf("unknown action %q", action))
	}
}

// generateOptions runs the full option pipeline. On failure the session drops
// back to the refinement state with its preferences and snapshot intact, and
// the failure is reported in the transcript instead of being swallowed.
func (s *DefaultService) generateOptions(ctx context.Context, sess *models.TripSession) (*models.TripSession, error) {
	if sess.Snapshot == nil {
		return nil, models.NewValidationError("action", "travel options need an availability search first")
	}
	if sess.State == models.StateGeneratingOptions {
		s.appendAssistant(sess, busyReply, nil)
		return sess, s.save(ctx, sess)
	}

	sess.State = models.StateGeneratingOptions
	if err := s.save(ctx, sess); err != nil {
		return nil, err
	}

	opts, err := s.Options.GenerateOptions(ctx, sess.Preferences)
	if err != nil {
		utils.GetLogger().Error("Option generation failed",
			zap.String("session", sess.ID), zap.Error(err))
		sess.State = models.StateRefinementOffered
		s.appendAssistant(sess, "I couldn't put your travel options together just now. We can keep refining and try again in a moment.", nil)
		return sess, s.save(ctx, sess)
	}

	sess.Options = opts
	sess.State = models.StateOptionsReady
	s.appendAssistant(sess,
		fmt.Sprintf("I found %d options for your trip to %s. Swipe through and pick what you like.",
			len(opts), sess.Preferences.Destination), nil)
	return sess, s.save(ctx, sess)
}

func (s *DefaultService) Transcript(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	sess, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess.Transcript, nil
}

func (s *DefaultService) Reset(ctx context.Context, sessionID string) error {
	lock := s.locks.get(sessionID)
	lock.Lock()
	defer lock.Unlock()
	return s.Store.Clear(ctx, sessionID)
}

func (s *DefaultService) appendAssistant(sess *models.TripSession, content string, actions []models.ChatAction) {
	sess.Transcript = append(sess.Transcript, newMessage(models.RoleAssistant, content, actions))
}

func (s *DefaultService) save(ctx context.Context, sess *models.TripSession) error {
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Set(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func newMessage(role models.ChatRole, content string, actions []models.ChatAction) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Actions:   actions,
	}
}

// insightsMessage renders the snapshot aggregates and suggested follow-up
// questions into one assistant message.
func insightsMessage(snap *models.QuickAvailabilitySnapshot) string {
	var b strings.Builder

	airlineCount := len(snap.Flights.Airlines)
	switch {
	case airlineCount > 1:
		b.WriteString(fmt.Sprintf("Here's what I'm seeing: %d airlines fly this route, with fares from $%.0f to $%.0f.",
			airlineCount, snap.Flights.MinPrice, snap.Flights.MaxPrice))
	case airlineCount == 1:
		b.WriteString(fmt.Sprintf("Here's what I'm seeing: %s flies this route, with fares from $%.0f to $%.0f.",
			snap.Flights.Airlines[0], snap.Flights.MinPrice, snap.Flights.MaxPrice))
	default:
		b.WriteString(fmt.Sprintf("Here's what I'm seeing: fares run from $%.0f to $%.0f on this route.",
			snap.Flights.MinPrice, snap.Flights.MaxPrice))
	}

	if len(snap.Hotels.PriceRanges) > 0 {
		r := snap.Hotels.PriceRanges[0]
		b.WriteString(fmt.Sprintf(" Hotels range from $%.0f to $%.0f per night.", r.Min, r.Max))
	}

	if len(snap.Analysis.SuggestedQuestions) > 0 {
		b.WriteString("\n\nA few things worth settling:")
		for _, q := range snap.Analysis.SuggestedQuestions {
			b.WriteString("\n- " + q)
		}
	}
	return b.String()
}
