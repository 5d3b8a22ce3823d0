package athletics

import (
	"errors"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

type userMessage struct {
	text string
	args []string // metadata keys, in format order
}

var userMessages = map[Code]userMessage{
	CodeEventNameEmpty:       {text: "Please provide a name for the event (e.g. 'Men 100m Final')."},
	CodeEventKindInvalid:     {text: "%s is not an event kind. Choose track, field, combined, walk or marathon.", args: []string{"kind"}},
	CodeEventKindUnsupported: {text: "Live recording for %s events is not supported yet.", args: []string{"kind"}},
	CodeEventNotFound:        {text: "No event with id %s.", args: []string{"id"}},
	CodeLaneOutOfRange:       {text: "Lane %s does not exist, this heat has %s lanes.", args: []string{"lane", "lanes"}},
	CodeAthleteOutOfRange:    {text: "Athlete %s does not exist, this event has %s athletes.", args: []string{"athlete", "athletes"}},
	CodeAttemptOutOfRange:    {text: "Attempt %s does not exist, each athlete has %s attempts.", args: []string{"attempt", "attempts"}},
	CodeStatusInvalid:        {text: "%s is not a result status. Choose OK, DNS, DNF or DQ.", args: []string{"status"}},
}

var messageCatalog = func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for code, m := range userMessages {
		if err := b.SetString(language.English, string(code), m.text); err != nil {
			panic(err)
		}
	}
	return b
}()

// UserMessage renders err as text suitable for showing to the person running
// the event. Errors that are not domain errors are returned verbatim.
func UserMessage(err error, tag language.Tag) string {
	if err == nil {
		return ""
	}
	var de *Error
	if !errors.As(err, &de) {
		return err.Error()
	}
	m, ok := userMessages[de.Code]
	if !ok {
		return de.Message
	}
	args := make([]any, len(m.args))
	for i, key := range m.args {
		args[i] = de.Metadata[key]
	}
	p := message.NewPrinter(tag, message.Catalog(messageCatalog))
	return p.Sprintf(string(de.Code), args...)
}
