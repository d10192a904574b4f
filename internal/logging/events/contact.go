package events

import "github.com/seawavessolutions/seawaves-site/internal/logging"

type ContactTracer struct{}

var Contact = ContactTracer{}

func (ContactTracer) Invalid(fields []string) {
	logging.Trace("contact.invalid", map[string]interface{}{"fields": fields})
}

func (ContactTracer) Submit(id string) {
	logging.Trace("contact.submit", map[string]interface{}{"id": id})
}

func (ContactTracer) Ignored(reason string) {
	logging.Trace("contact.submit.ignored", map[string]interface{}{"reason": reason})
}

func (ContactTracer) Success(id string) {
	logging.Trace("contact.success", map[string]interface{}{"id": id})
}

func (ContactTracer) Error(id string, err error) {
	payload := map[string]interface{}{"id": id}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("contact.error", payload)
}

func (ContactTracer) Stale(id string) {
	logging.Trace("contact.stale", map[string]interface{}{"id": id})
}
