package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"matka/database"
	"matka/models"

	"github.com/PuerkitoBio/goquery"
	"gorm.io/gorm"
)

var chartDayNames = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

var dateRangeRe = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})to(\d{2}/\d{2}/\d{4})`)

// All settlement dates are calendar dates in India, independent of server
// locale.
var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// ChartWeekData is one parsed week row of a market's historical chart.
type ChartWeekData struct {
	DateRange string        `json:"date_range"`
	Results   []DailyResult `json:"results"`
}

// MatkaClient fetches result charts from the external matka site. The site
// is unreliable; every failure surfaces as an error the chart source
// downgrades to a skip.
type MatkaClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewMatkaClient() *MatkaClient {
	base := os.Getenv("MATKA_BASE_URL")
	if base == "" {
		base = "https://sattamatkano1.me"
	}
	return &MatkaClient{
		BaseURL: base,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (m *MatkaClient) get(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.BaseURL+endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := m.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("matka request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("matka request failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// GetChart fetches and parses the weekly result chart for a game.
func (m *MatkaClient) GetChart(ctx context.Context, gameID string) ([]ChartWeekData, error) {
	html, err := m.get(ctx, "/"+gameID+".php")
	if err != nil {
		return nil, err
	}
	return ParseChart(html)
}

// ParseChart extracts the weekly rows from a chart page. Each body row is
// one week: a date-range cell followed by seven (open panna, jodi, close
// panna) cell triples. A day is a holiday when its jodi cell is marked red
// and non-numeric.
func ParseChart(html string) ([]ChartWeekData, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse chart html: %w", err)
	}

	rows := doc.Find("tbody tr")
	if rows.Length() < 2 {
		return nil, nil
	}

	var weeks []ChartWeekData
	rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		cells := row.Children()
		if cells.Length() < 1 {
			return
		}

		dateRange := strings.Join(strings.Fields(cells.Eq(0).Text()), " ")
		week := ChartWeekData{DateRange: dateRange}

		for i := 0; i < 7; i++ {
			start := 1 + i*3
			if start+2 >= cells.Length() {
				continue
			}

			openCell := cells.Eq(start)
			jodiCell := cells.Eq(start + 1)
			closeCell := cells.Eq(start + 2)

			opening := strings.Join(strings.Fields(openCell.Text()), "")
			jodi := strings.TrimSpace(jodiCell.Text())
			closing := strings.Join(strings.Fields(closeCell.Text()), "")

			jodiHTML, _ := jodiCell.Html()
			isHoliday := strings.Contains(jodiHTML, `color="red"`) && !startsWithDigit(jodi)

			day := DailyResult{
				DayOfWeek:    chartDayNames[i],
				IsClosed:     isHoliday,
				OpeningPanna: opening,
				Jodi:         jodi,
				ClosingPanna: closing,
			}
			if isHoliday {
				day.OpeningPanna = PannaUndeclared
				day.Jodi = JodiUndeclared
				day.ClosingPanna = PannaUndeclared
			}
			day.Normalize()
			week.Results = append(week.Results, day)
		}

		weeks = append(weeks, week)
	})

	return weeks, nil
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func parseISTDate(s string) (time.Time, error) {
	return time.ParseInLocation("02/01/2006", s, istLocation)
}

// FindResultForDate locates the week whose IST date range covers date and
// returns its result for that IST day of week, or nil when no week covers
// the date.
func FindResultForDate(weeks []ChartWeekData, date time.Time) *DailyResult {
	dayInIndia := strings.ToUpper(date.In(istLocation).Format("Mon"))

	for _, week := range weeks {
		parts := dateRangeRe.FindStringSubmatch(strings.ReplaceAll(week.DateRange, " ", ""))
		if parts == nil {
			continue
		}
		start, err1 := parseISTDate(parts[1])
		end, err2 := parseISTDate(parts[2])
		if err1 != nil || err2 != nil {
			continue
		}
		end = end.Add(24*time.Hour - time.Nanosecond)

		if !date.Before(start) && !date.After(end) {
			for i := range week.Results {
				if week.Results[i].DayOfWeek == dayInIndia {
					return &week.Results[i]
				}
			}
			return nil
		}
	}
	return nil
}

// ChartSource resolves daily results from the scraped chart. Charts are
// fetched at most once per game per run and mirrored into the chart_weeks
// cache table.
type ChartSource struct {
	Client *MatkaClient
	cache  map[string][]ChartWeekData
}

func NewChartSource(client *MatkaClient) *ChartSource {
	return &ChartSource{Client: client, cache: make(map[string][]ChartWeekData)}
}

func (s *ChartSource) ResolveDailyResult(ctx context.Context, gameID string, date time.Time) (*DailyResult, error) {
	weeks, ok := s.cache[gameID]
	if !ok {
		var err error
		weeks, err = s.Client.GetChart(ctx, gameID)
		if err != nil {
			log.Printf("⚠️  [%s] chart fetch failed: %v", gameID, err)
			weeks = nil
		} else if len(weeks) == 0 {
			log.Printf("⚠️  [%s] no chart data found", gameID)
			weeks = nil
		}
		// Failures are cached too: one fetch per game per run, win or
		// lose.
		s.cache[gameID] = weeks
		if weeks != nil {
			saveChartWeeks(gameID, weeks)
		}
	}
	if weeks == nil {
		return nil, nil
	}

	return FindResultForDate(weeks, date), nil
}

// saveChartWeeks mirrors freshly scraped weeks into the cache table so
// recent charts survive across runs. Failures only log; the cache is an
// optimization, not a source of truth.
func saveChartWeeks(gameID string, weeks []ChartWeekData) {
	if database.DB == nil {
		return
	}
	for _, week := range weeks {
		days, err := json.Marshal(week.Results)
		if err != nil {
			continue
		}

		var existing models.ChartWeek
		err = database.DB.Where("game_id = ? AND date_range = ?", gameID, week.DateRange).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if cerr := database.DB.Create(&models.ChartWeek{
					GameID:    gameID,
					DateRange: week.DateRange,
					Days:      days,
					FetchedAt: time.Now(),
				}).Error; cerr != nil {
					log.Printf("⚠️  [%s] failed to cache chart week: %v", gameID, cerr)
				}
			}
			continue
		}

		if uerr := database.DB.Model(&existing).Updates(map[string]any{
			"days":       days,
			"fetched_at": time.Now(),
		}).Error; uerr != nil {
			log.Printf("⚠️  [%s] failed to refresh chart week: %v", gameID, uerr)
		}
	}
}
