package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/renascerfit/coach/internal/models"
	"github.com/renascerfit/coach/pkg/logctx"
	"github.com/renascerfit/coach/pkg/tool"
)

const trendWindowDays = 7

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// CheckInRequest is a daily check-in, from the form or from wearable sync.
type CheckInRequest struct {
	// Date in "2006-01-02"; empty means today.
	Date         string   `json:"date"`
	SleepHours   *float64 `json:"sleep_hours"`
	StressLevel  *int     `json:"stress_level"`
	EnergyFocus  *int     `json:"energy_focus"`
	TrainedToday bool     `json:"trained_today"`
	RPE          *int     `json:"rpe"`
	Source       string   `json:"source"`
}

func (r *CheckInRequest) validate() error {
	if r.SleepHours != nil && (*r.SleepHours < 0 || *r.SleepHours > 24) {
		return fmt.Errorf("sleep_hours out of range: %v", *r.SleepHours)
	}
	if r.StressLevel != nil && (*r.StressLevel < 0 || *r.StressLevel > 100) {
		return fmt.Errorf("stress_level out of range: %d", *r.StressLevel)
	}
	if r.EnergyFocus != nil && (*r.EnergyFocus < 1 || *r.EnergyFocus > 5) {
		return fmt.Errorf("energy_focus out of range: %d", *r.EnergyFocus)
	}
	if r.RPE != nil && (*r.RPE < 0 || *r.RPE > 10) {
		return fmt.Errorf("rpe out of range: %d", *r.RPE)
	}
	return nil
}

// Reading is the computed readiness state for one day.
type Reading struct {
	Date           string         `json:"date"`
	Score          int            `json:"score"`
	Classification Classification `json:"classification"`
	Trend          TrendDirection `json:"trend"`
	History        []DailyScore   `json:"history"`
}

type DailyScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// CheckIn upserts the day's log and returns the recomputed reading. A
// repeated check-in for the same date overwrites the metrics; the score is
// always recomputed on read, never stored.
func (s *Service) CheckIn(ctx context.Context, userID string, req *CheckInRequest) (*Reading, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	date := time.Now()
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", err)
		}
		// Logs are one per calendar day, written on the day itself or
		// backfilled; days that have not happened yet are rejected.
		if date.Format("2006-01-02") > time.Now().Format("2006-01-02") {
			return nil, fmt.Errorf("date is in the future: %s", req.Date)
		}
	}
	day := date.Format("2006-01-02")

	source := req.Source
	if source == "" {
		source = "manual"
	}

	var existing models.DayLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date = ?", userID, day).
		First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load day log: %w", err)
	}

	entry := models.DayLog{
		ID:           existing.ID,
		UserID:       userID,
		LogDate:      datatypes.Date(date),
		SleepHours:   req.SleepHours,
		StressLevel:  req.StressLevel,
		EnergyFocus:  req.EnergyFocus,
		TrainedToday: req.TrainedToday,
		RPE:          req.RPE,
		Source:       source,
		CreatedAt:    existing.CreatedAt,
	}
	if entry.ID == "" {
		entry.ID = tool.GenerateUUIDV7()
	}
	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to save day log: %w", err)
	}

	logctx.FromCtx(ctx, s.log).Infow("day_log_saved", "user_id", userID, "date", day, "source", source)

	return s.ReadingForDate(ctx, userID, date)
}

// TodayReading computes the reading for the current date.
func (s *Service) TodayReading(ctx context.Context, userID string) (*Reading, error) {
	return s.ReadingForDate(ctx, userID, time.Now())
}

// TrendReport is the trend direction with the daily scores behind it.
type TrendReport struct {
	Trend   TrendDirection `json:"trend"`
	History []DailyScore   `json:"history"`
}

// WeeklyTrend returns the score trend over the trailing log window.
func (s *Service) WeeklyTrend(ctx context.Context, userID string) (*TrendReport, error) {
	logs, err := s.recentLogs(ctx, userID, time.Now())
	if err != nil {
		return nil, err
	}
	history := dailyScores(logs)
	return &TrendReport{
		Trend:   Trend(lo.Map(history, func(d DailyScore, _ int) int { return d.Score })),
		History: history,
	}, nil
}

// ReadingForDate computes score, classification and trend for the given
// date from the trailing log window.
func (s *Service) ReadingForDate(ctx context.Context, userID string, date time.Time) (*Reading, error) {
	logs, err := s.recentLogs(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	history := dailyScores(logs)
	day := date.Format("2006-01-02")

	today, ok := lo.Find(history, func(d DailyScore) bool { return d.Date == day })
	if !ok {
		// No log for the date: score from an empty entry, all defaults.
		today = DailyScore{Date: day, Score: Score(Entry{}, previousDayEntry(logs, date))}
	}

	return &Reading{
		Date:           day,
		Score:          today.Score,
		Classification: Classify(today.Score),
		Trend:          Trend(lo.Map(history, func(d DailyScore, _ int) int { return d.Score })),
		History:        history,
	}, nil
}

func (s *Service) recentLogs(ctx context.Context, userID string, until time.Time) ([]*models.DayLog, error) {
	since := until.AddDate(0, 0, -(trendWindowDays - 1)).Format("2006-01-02")
	var logs []*models.DayLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND log_date >= ? AND log_date <= ?", userID, since, until.Format("2006-01-02")).
		Order("log_date asc").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load day logs: %w", err)
	}
	return logs, nil
}

// dailyScores computes per-day scores for logs ordered oldest to newest.
// Each day's score uses the previous calendar day's log as its recovery
// context; gaps in the sequence mean no recovery debt is applied.
func dailyScores(logs []*models.DayLog) []DailyScore {
	byDate := lo.KeyBy(logs, func(l *models.DayLog) string {
		return time.Time(l.LogDate).Format("2006-01-02")
	})

	out := make([]DailyScore, 0, len(logs))
	for _, l := range logs {
		day := time.Time(l.LogDate)
		var yesterday *Entry
		if prev, ok := byDate[day.AddDate(0, 0, -1).Format("2006-01-02")]; ok {
			e := entryFromLog(prev)
			yesterday = &e
		}
		today := entryFromLog(l)
		out = append(out, DailyScore{
			Date:  day.Format("2006-01-02"),
			Score: Score(today, yesterday),
		})
	}
	return out
}

func previousDayEntry(logs []*models.DayLog, date time.Time) *Entry {
	prevDay := date.AddDate(0, 0, -1).Format("2006-01-02")
	for _, l := range logs {
		if time.Time(l.LogDate).Format("2006-01-02") == prevDay {
			e := entryFromLog(l)
			return &e
		}
	}
	return nil
}

func entryFromLog(l *models.DayLog) Entry {
	return Entry{
		SleepHours:   l.SleepHours,
		StressLevel:  l.StressLevel,
		EnergyFocus:  l.EnergyFocus,
		TrainedToday: l.TrainedToday,
		RPE:          l.RPE,
	}
}
