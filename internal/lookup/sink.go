package lookup

// Notification kinds understood by the widget's toast surface.
const (
	NotifyError = "error"
	NotifyInfo  = "info"
)

// Sink is the render boundary: whatever displays normalized weather to the
// user. The core only pushes into it and never inspects how it renders.
type Sink interface {
	Render(weather Weather, forecast []ForecastDay)
	Notify(message string, kind string)
}
