package tui

import (
	"github.com/MKhiriev/go-auth-shell/models"
)

const noResponseText = "No response from server. Please try again later."

// notificationModel is the blocking overlay that shows one submission outcome.
type notificationModel struct {
	title   string
	message string
	status  string
}

func newNotification(outcome models.AuthOutcome, failurePrefix string) *notificationModel {
	title := "Failed"
	if outcome.IsOk() {
		title = "Success"
	}
	return &notificationModel{title: title, message: notificationText(outcome, failurePrefix)}
}

// notificationText renders the single message shown for an outcome.
func notificationText(outcome models.AuthOutcome, failurePrefix string) string {
	switch outcome.Kind {
	case models.OutcomeOk:
		return outcome.Message
	case models.OutcomeRejectedByServer:
		return failurePrefix + outcome.Message
	case models.OutcomeNoResponse:
		return noResponseText
	default:
		return "Error: " + outcome.Message
	}
}

func (m notificationModel) View() string {
	content := titleStyle.Render(m.title) + "\n\n" + m.message + "\n\n"
	if m.status != "" {
		content += m.status + "\n\n"
	}
	content += helpStyle.Render("enter / esc: close │ c: copy")
	return overlayBoxStyle.Render(content)
}
