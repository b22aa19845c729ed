package events

import (
	"fmt"
	"time"
)

const EventTypeTaskFinalSubmit = "usertask.final_submit"

const windowDateLayout = "2006-01-02"

// TaskFinalSubmitData is the audit payload for a bulk final submit: who
// locked their tasks, how many, over which window. An empty date means that
// side of the window was open.
type TaskFinalSubmitData struct {
	UserID      int64
	LockedCount int64
	StartDate   string
	EndDate     string
}

func NewTaskFinalSubmitEvent(userID int64, lockedCount int64, startDate, endDate *time.Time) BaseEvent {
	data := map[string]interface{}{
		"user_id":      userID,
		"locked_count": lockedCount,
	}
	if startDate != nil {
		data["start_date"] = startDate.Format(windowDateLayout)
	}
	if endDate != nil {
		data["end_date"] = endDate.Format(windowDateLayout)
	}

	return BaseEvent{
		ID:        fmt.Sprintf("final-submit-%d-%d", userID, time.Now().UnixNano()),
		Type:      EventTypeTaskFinalSubmit,
		Timestamp: time.Now(),
		Data:      data,
	}
}

// TaskFinalSubmitFromEvent recovers the typed payload from a bus event.
// Subscribers use this instead of picking fields out of the raw map.
func TaskFinalSubmitFromEvent(event Event) (TaskFinalSubmitData, bool) {
	if event.EventType() != EventTypeTaskFinalSubmit {
		return TaskFinalSubmitData{}, false
	}
	raw, ok := event.Payload().(map[string]interface{})
	if !ok {
		return TaskFinalSubmitData{}, false
	}

	var data TaskFinalSubmitData
	if v, ok := raw["user_id"].(int64); ok {
		data.UserID = v
	}
	if v, ok := raw["locked_count"].(int64); ok {
		data.LockedCount = v
	}
	if v, ok := raw["start_date"].(string); ok {
		data.StartDate = v
	}
	if v, ok := raw["end_date"].(string); ok {
		data.EndDate = v
	}
	return data, true
}
