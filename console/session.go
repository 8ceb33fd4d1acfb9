package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dunn-delivery/config"
	"dunn-delivery/lang"
	"dunn-delivery/models"
	"dunn-delivery/services"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrInputClosed is returned when input ends before the session finishes.
var ErrInputClosed = errors.New("input closed")

// Session runs one customer through the ordering flow over a line-oriented
// reader and writer.
type Session struct {
	in   *lineReader
	out  io.Writer
	cfg  *config.Config
	calc *services.Calculator
	log  zerolog.Logger
}

func New(cfg *config.Config, calc *services.Calculator, in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		in:   newLineReader(in),
		out:  out,
		cfg:  cfg,
		calc: calc,
		log:  logger.With().Str("session_id", uuid.NewString()).Logger(),
	}
}

// Run drives the full flow: opening menu, order details, item entry,
// receipt and rating, then the budget search.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info().Msg("session started")

	if err := s.ShowMenu(s.cfg.Session.OpeningCategory); err != nil {
		return err
	}

	location, err := s.PromptLocation(ctx)
	if err != nil {
		return err
	}
	hour, err := s.PromptHour(ctx)
	if err != nil {
		return err
	}
	hasStudentID, err := s.PromptYesNo(ctx, lang.T("ask_student_id"))
	if err != nil {
		return err
	}
	priority, err := s.PromptYesNo(ctx, lang.T("ask_priority", services.FormatMoney(s.calc.PrioritySurcharge())))
	if err != nil {
		return err
	}
	items, err := s.PromptItems(ctx)
	if err != nil {
		return err
	}

	if len(items) > 0 {
		order := models.Order{
			ID:           uuid.NewString(),
			Location:     location,
			Items:        items,
			CurrentHour:  hour,
			HasStudentID: hasStudentID,
			Priority:     priority,
		}
		switch err := s.PrintOrder(order); {
		case err == nil:
			if _, err := s.RateDelivery(ctx); err != nil {
				return err
			}
		case errors.Is(err, services.ErrItemUnavailable):
		default:
			return err
		}
	}

	budget, err := s.PromptBudget(ctx)
	if err != nil {
		return err
	}
	s.PrintSearch(budget)

	s.log.Info().Msg("session finished")
	return nil
}

// ShowMenu prints one category, or the whole menu when category is empty.
func (s *Session) ShowMenu(category string) error {
	var items []models.MenuItem
	if category == "" {
		items = s.calc.Catalog().Menu()
	} else {
		var err error
		items, err = s.calc.Catalog().MenuCategory(category)
		if err != nil {
			return fmt.Errorf("show menu: %w", err)
		}
	}
	s.printLines(services.BuildMenuText(items))
	return nil
}

func (s *Session) PromptLocation(ctx context.Context) (string, error) {
	locs := s.calc.Catalog().Locations()
	names := make([]string, len(locs))
	for i, l := range locs {
		names[i] = l.Name
	}
	prompt := lang.T("ask_location", strings.Join(names, ", "))
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		location, err := services.ParseLocation(s.calc.Catalog(), line)
		if err == nil {
			return location, nil
		}
		s.log.Debug().Err(err).Msg("invalid location")
		s.println(lang.T("invalid_location"))
	}
}

func (s *Session) PromptHour(ctx context.Context) (int, error) {
	for {
		line, err := s.readLine(ctx, lang.T("ask_hour"))
		if err != nil {
			return 0, err
		}
		hour, err := services.ParseHour(line)
		if err == nil {
			return hour, nil
		}
		s.log.Debug().Err(err).Str("input", line).Msg("invalid hour")
		s.println(lang.T("invalid_hour"))
	}
}

func (s *Session) PromptYesNo(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return false, err
		}
		v, err := services.ParseYesNo(line)
		if err == nil {
			return v, nil
		}
		s.println(lang.T("invalid_yes_no"))
	}
}

// PromptItems collects item names until "done". Unknown names are reported
// and skipped.
func (s *Session) PromptItems(ctx context.Context) ([]string, error) {
	s.println(lang.T("ask_items"))
	var items []string
	for {
		line, err := s.readLine(ctx, lang.T("item_prompt"))
		if err != nil {
			return nil, err
		}
		if services.IsDone(line) {
			return items, nil
		}
		item := strings.TrimSpace(line)
		if !s.calc.Catalog().HasItem(item) {
			s.println(lang.T("item_unavailable", item))
			continue
		}
		items = append(items, item)
	}
}

// PrintOrder prints the receipt. If any item is unavailable nothing but the
// rejection notice is printed and the error is returned.
func (s *Session) PrintOrder(o models.Order) error {
	r, err := s.calc.PrepareReceipt(o)
	if err != nil {
		if errors.Is(err, services.ErrItemUnavailable) {
			s.log.Warn().Err(err).Str("order_id", o.ID).Msg("order rejected")
			s.println(lang.T("order_unavailable"))
		}
		return err
	}
	s.log.Debug().
		Str("order_id", o.ID).
		Str("subtotal", r.Quote.Subtotal.String()).
		Str("total", r.Quote.Total.String()).
		Int("eta_minutes", r.DeliveryMinutes).
		Msg("order priced")
	s.printLines(services.BuildReceiptText(r, s.calc.PriorityReductionMinutes()))
	return nil
}

// RateDelivery asks for a 1-5 star rating until a valid one is given.
func (s *Session) RateDelivery(ctx context.Context) (int, error) {
	for {
		line, err := s.readLine(ctx, lang.T("ask_rating"))
		if err != nil {
			return 0, err
		}
		rating, err := services.ParseRating(line)
		switch {
		case err == nil:
			s.log.Info().Int("rating", rating).Msg("rating recorded")
			s.println(lang.T("rating_thanks", rating))
			return rating, nil
		case errors.Is(err, services.ErrRatingOutOfRange):
			s.println(lang.T("rating_out_of_range"))
		default:
			s.println(lang.T("rating_not_number"))
		}
	}
}

func (s *Session) PromptBudget(ctx context.Context) (decimal.Decimal, error) {
	for {
		line, err := s.readLine(ctx, lang.T("ask_budget"))
		if err != nil {
			return decimal.Zero, err
		}
		budget, err := services.ParseMoney(line)
		if err == nil {
			return budget, nil
		}
		s.println(lang.T("invalid_budget"))
	}
}

func (s *Session) PrintSearch(maxPrice decimal.Decimal) []models.MenuItem {
	found := s.calc.Catalog().SearchByMaxPrice(maxPrice)
	s.printLines(services.BuildSearchText(maxPrice, found))
	return found
}

// readLine prints prompt and waits for the next line or ctx cancellation.
// Over-long lines are rejected and the prompt repeated.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(s.out, prompt)
		l, err := s.in.next(ctx)
		if err != nil {
			return "", err
		}
		if l.tooLong {
			s.log.Debug().Msg("input line too long")
			s.println(lang.T("input_too_long"))
			continue
		}
		return l.text, nil
	}
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Session) printLines(lines []string) {
	for _, l := range lines {
		s.println(l)
	}
}
