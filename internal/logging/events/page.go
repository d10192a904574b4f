package events

import "github.com/seawavessolutions/seawaves-site/internal/logging"

type PageTracer struct{}

type LinkTracer struct{}

var (
	Page = PageTracer{}
	Link = LinkTracer{}
)

func (PageTracer) Mount(popup bool) {
	logging.Trace("page.mount", map[string]interface{}{"popup": popup})
}

func (PageTracer) Loaded() {
	logging.Trace("page.loaded", nil)
}

func (PageTracer) Popup(visible bool) {
	logging.Trace("page.popup", map[string]interface{}{"visible": visible})
}

func (PageTracer) Section(from, to string) {
	logging.Trace("page.section", map[string]interface{}{"from": from, "to": to})
}

func (PageTracer) Navigate(target string, known bool) {
	logging.Trace("page.navigate", map[string]interface{}{"target": target, "known": known})
}

func (PageTracer) Suppress(active bool) {
	logging.Trace("page.suppress", map[string]interface{}{"active": active})
}

func (PageTracer) Menu(open bool) {
	logging.Trace("page.menu", map[string]interface{}{"open": open})
}

func (PageTracer) Capability(index int) {
	logging.Trace("page.capability", map[string]interface{}{"index": index})
}

func (PageTracer) Teardown() {
	logging.Trace("page.teardown", nil)
}

func (LinkTracer) Copy(kind, url string) {
	logging.Trace("link.copy", map[string]interface{}{"kind": kind, "url": url})
}

func (LinkTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("link.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
