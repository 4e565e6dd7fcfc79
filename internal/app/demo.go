package app

import (
	"embed"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"time"

	"github.com/vk/weave/binder"
	"github.com/vk/weave/component"
	"github.com/vk/weave/data"
)

// DemoLayoutName is the file name the embedded demo layout is read as.
const DemoLayoutName = "demo.hcl"

//go:embed demo.hcl
var demoFS embed.FS

// DemoController is bound to the demo layout. It notifies through its
// logger and remembers every notification.
type DemoController struct {
	Status *component.Label `ui:"status"`

	logger *slog.Logger
	now    func() time.Time

	mu            sync.Mutex
	notifications []string
}

// NewDemoController returns a controller logging to logger.
func NewDemoController(logger *slog.Logger) *DemoController {
	return &DemoController{logger: logger, now: time.Now}
}

func (c *DemoController) UIMarkers() []binder.Marker {
	return []binder.Marker{
		binder.DataSource("date", "DateProperty"),
		binder.DataSource("person-list", "PersonCollection"),
		binder.Handler("button", "HandleButtonClick"),
		binder.Handler("another-button", "HandleAnotherButtonClick"),
		binder.Handler("value-field", "ValueChanged"),
	}
}

func (c *DemoController) DateProperty() data.Property {
	return data.NewObjectProperty(c.now())
}

func (c *DemoController) PersonCollection() (data.Collection, error) {
	people := data.NewIndexedCollection()
	people.AddCollectionProperty("Name", reflect.TypeFor[string](), "")
	people.AddCollectionProperty("Age", reflect.TypeFor[int](), 0)

	for _, p := range []struct {
		name string
		age  int
	}{
		{"Teemu Pöntelin", 32},
		{"John Smith", 35},
	} {
		item := people.Item(people.AddItem())
		if err := item.ItemProperty("Name").SetValue(p.name); err != nil {
			return nil, err
		}
		if err := item.ItemProperty("Age").SetValue(p.age); err != nil {
			return nil, err
		}
	}
	return people, nil
}

func (c *DemoController) HandleButtonClick(component.ClickEvent) {
	c.notify(`Button "button" clicked`)
}

func (c *DemoController) HandleAnotherButtonClick(component.ClickEvent) {
	c.notify(`Button "another-button" clicked`)
}

func (c *DemoController) ValueChanged(e component.ValueChangeEvent) {
	c.notify(fmt.Sprintf(`Value of "value-field" is now %v`, e.Value))
}

// Notifications returns what the controller has reported so far.
func (c *DemoController) Notifications() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.notifications...)
}

func (c *DemoController) notify(msg string) {
	c.mu.Lock()
	c.notifications = append(c.notifications, msg)
	n := len(c.notifications)
	c.mu.Unlock()

	c.logger.Info("🔔 "+msg, "notifications", n)
	if c.Status != nil {
		c.Status.SetValue(msg)
	}
}
