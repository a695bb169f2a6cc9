package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lkaestner/tourplan/internal/agent"
	"github.com/lkaestner/tourplan/internal/tour"
)

const planSystemPrompt = `Du bist ein KI-Agent für die Tourenplanung eines ambulanten Pflegedienstes.

Kontext:
- Zu planender Tag: %s (%s)
- Frühschicht: 06:00-14:00, Spätschicht: 14:00-22:00

%s

%s

%s

Verfügbare Aktionen:
1. createTour: Neue Tour anlegen. Args: employeeId, date (YYYY-MM-DD), shift ("early"|"late"|"night"), plannedStart (HH:MM), plannedEnd (HH:MM)
2. addTaskToTour: Einsatz zu einer Tour hinzufügen. Args: tourId, residentId, type, scheduledTime (ISO 8601), estimatedDuration (Minuten), notes (optional)
3. updateTask: Einsatz ändern. Args: taskId, scheduledTime und/oder estimatedDuration und/oder notes
4. deleteTask: Einsatz löschen. Args: taskId
5. deleteTour: Tour samt Einsätzen löschen. Args: tourId

Regeln:
- Antworte NUR mit gültigem JSON, ohne Markdown und ohne Erklärtext.
- Einsatztypen: medikamente, koerperpflege, mobilisation, wundversorgung, ernaehrung, dokumentation, arztbesuch, freizeitgestaltung
- Plane Einsätze ohne zeitliche Überschneidungen innerhalb einer Tour.
- Füge IMMER Fahrtzeiten zwischen den Einsätzen ein: addTaskToTour mit residentId="driving", type="dokumentation", estimatedDuration 10-15, notes "Fahrtzeit".
- Berücksichtige Qualifikationen: behandlungspflege nur durch examinierte Pflegekräfte.
- Wenn du eine Tour neu anlegst und danach Einsätze hinzufügst, verwende als tourId den Platzhalter "TOUR_ID_FROM_PREVIOUS_STEP". Die ID wird automatisch vom System ersetzt.

Anfrage: "%s"

Antwortformat:
{
  "actions": [
    { "function": "createTour", "args": { "employeeId": "emp-1", "date": "%s", "shift": "early", "plannedStart": "06:00", "plannedEnd": "14:00" } },
    { "function": "addTaskToTour", "args": { "tourId": "TOUR_ID_FROM_PREVIOUS_STEP", "residentId": "res-1", "type": "koerperpflege", "scheduledTime": "%sT06:30:00", "estimatedDuration": 30 } },
    { "function": "addTaskToTour", "args": { "tourId": "TOUR_ID_FROM_PREVIOUS_STEP", "residentId": "driving", "type": "dokumentation", "scheduledTime": "%sT07:00:00", "estimatedDuration": 10, "notes": "Fahrtzeit" } }
  ],
  "reasoning": "Kurze Begründung der Planung"
}`

// PlanRequest contains the input for the planner.
type PlanRequest struct {
	Input     string
	Date      time.Time
	Employees []tour.Employee
	Residents []tour.Resident
	Tours     []tour.Tour // Existing tours for the day (for overlap avoidance)
}

// PlanResponse contains the parsed LLM response.
type PlanResponse struct {
	Actions   []agent.Action `json:"actions"`
	Reasoning string         `json:"reasoning"`
	Warnings  []string       `json:"warnings"`
}

// Planner uses an LLM to turn natural language requests into tour actions.
type Planner struct {
	client Client
}

// NewPlanner creates a new Planner with the given LLM client.
func NewPlanner(client Client) *Planner {
	return &Planner{client: client}
}

// Plan converts a natural language request into a batch of tour actions.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error) {
	messages := p.BuildMessages(req)
	return p.PlanWithMessages(ctx, messages)
}

// PlanWithMessages allows planning with a pre-built message history.
// This is used for retry logic where we need to append error feedback.
func (p *Planner) PlanWithMessages(ctx context.Context, messages []Message) (*PlanResponse, error) {
	var resp PlanResponse
	if err := p.client.ChatJSON(ctx, messages, &resp); err != nil {
		return nil, fmt.Errorf("planning request failed: %w", err)
	}
	return &resp, nil
}

// BuildMessages creates the initial message list for a planning request.
// Exported so callers can append error feedback for retries.
func (p *Planner) BuildMessages(req PlanRequest) []Message {
	date := req.Date.Format("2006-01-02")
	dayOfWeek := req.Date.Format("Monday")

	prompt := fmt.Sprintf(planSystemPrompt,
		date,
		dayOfWeek,
		p.formatEmployees(req.Employees),
		p.formatResidents(req.Residents),
		p.formatTours(req.Tours),
		req.Input,
		date,
		date,
		date,
	)

	return []Message{
		{Role: "system", Content: prompt},
	}
}

func (p *Planner) formatEmployees(employees []tour.Employee) string {
	if len(employees) == 0 {
		return "Mitarbeiter: Keine"
	}

	var sb strings.Builder
	sb.WriteString("Mitarbeiter:\n")
	for _, e := range employees {
		quals := make([]string, 0, len(e.Qualifications))
		for _, q := range e.Qualifications {
			quals = append(quals, string(q))
		}
		sb.WriteString(fmt.Sprintf("- %s: %s (max. %d Std./Tag, Qualifikationen: %s)\n",
			e.ID, e.Name, e.MaxHoursPerDay, strings.Join(quals, ", ")))
	}
	return sb.String()
}

func (p *Planner) formatResidents(residents []tour.Resident) string {
	if len(residents) == 0 {
		return "Bewohner: Keine"
	}

	var sb strings.Builder
	sb.WriteString("Bewohner:\n")
	for _, r := range residents {
		needs := make([]string, 0, len(r.Requirements))
		for _, c := range r.Requirements {
			needs = append(needs, string(c.Type))
		}
		sb.WriteString(fmt.Sprintf("- %s: %s (Pflegegrad %d, Bedarf: %s)\n",
			r.ID, r.Name, r.CareLevel, strings.Join(needs, ", ")))
	}
	return sb.String()
}

func (p *Planner) formatTours(tours []tour.Tour) string {
	if len(tours) == 0 {
		return "Bestehende Touren für den Tag: Keine"
	}

	var sb strings.Builder
	sb.WriteString("Bestehende Touren für den Tag (Überschneidungen vermeiden):\n")
	for _, t := range tours {
		sb.WriteString(fmt.Sprintf("- Tour %s: Mitarbeiter %s, %s-%s, %d Einsätze\n",
			t.ID, t.EmployeeID, t.PlannedStart, t.PlannedEnd, len(t.Tasks)))
		for _, task := range t.Tasks {
			sb.WriteString(fmt.Sprintf("  - %s %s (%d Min., Bewohner %s)\n",
				task.ScheduledTime.Format("15:04"), task.Type, task.EstimatedDuration, task.ResidentID))
		}
	}
	return sb.String()
}
