package openinghours

// Formatter renders opening hours and business status with a label catalog.
type Formatter struct {
	Labels Labels
}

// NewFormatter returns a Formatter using labels.
func NewFormatter(labels Labels) *Formatter {
	return &Formatter{Labels: labels}
}

var defaultFormatter = NewFormatter(JapaneseLabels)

// FormatBusinessStatus renders the open/closed status with the default catalog.
func FormatBusinessStatus(isOpenNow bool, remainingMinutes int) string {
	return defaultFormatter.FormatBusinessStatus(isOpenNow, remainingMinutes)
}

// FormatBusinessStatus renders the status line, e.g. "営業中（あと2時間5分）".
func (f *Formatter) FormatBusinessStatus(isOpenNow bool, remainingMinutes int) string {
	if !isOpenNow {
		return f.Labels.Closed
	}
	if remainingMinutes <= 0 {
		return f.Labels.ClosingSoon
	}
	return f.Labels.RemainingText(remainingMinutes/60, remainingMinutes%60)
}
