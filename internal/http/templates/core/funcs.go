package core

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
	"github.com/sustainastock/sustainastock-ui/internal/http/uiutil"
)

// Deps holds optional dependencies for constructing the core template func map.
type Deps struct {
	Template           **template.Template
	ContentTemplateFor func(string) string
}

// Funcs returns a template.FuncMap containing helpers that are broadly useful across templates.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"sectionTmpl":  deps.ContentTemplateFor,
		"friendlyTime": friendlyTime,
		"date":         dateOf,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"contains":     strings.Contains,
		"formatNumber": formatNumberTemplate,
		"money":        moneyTemplate,
		"percent":      uiutil.FormatPercent,
		"qty":          uiutil.FormatQuantity,
		"urgencyClass": urgencyClass,
		"truncateText": TruncateText,
		"derefInt":     derefInt,
	}

	addRenderFuncs(funcs, deps)
	return funcs
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderSection"] = func(page string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, deps.ContentTemplateFor(page), data); err != nil {
			return "", err
		}
		// #nosec G203 - output of our own html/template execution; values were escaped there.
		return template.HTML(buf.String()), nil
	}
}

func asTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	case model.Timestamp:
		return v.Time
	case *model.Timestamp:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

func friendlyTime(ts any) string {
	return uiutil.FormatFriendlyDateTime(asTime(ts))
}

// dateOf renders the calendar date as YYYY-MM-DD, suitable for <input type="date">.
func dateOf(ts any) string {
	t := asTime(ts)
	if t.IsZero() {
		return ""
	}
	return t.Format(model.DateLayout)
}

func moneyTemplate(v any) string {
	switch x := v.(type) {
	case float64:
		return uiutil.FormatMoney(x)
	case *float64:
		if x == nil {
			return ""
		}
		return uiutil.FormatMoney(*x)
	case int:
		return uiutil.FormatMoney(float64(x))
	default:
		return fmt.Sprint(v)
	}
}

// formatNumberTemplate formats integer types with comma separators for thousands.
func formatNumberTemplate(v any) string {
	switch x := v.(type) {
	case int:
		return uiutil.GroupThousands(strconv.FormatInt(int64(x), 10))
	case int64:
		return uiutil.GroupThousands(strconv.FormatInt(x, 10))
	case int32:
		return uiutil.GroupThousands(strconv.FormatInt(int64(x), 10))
	case uint:
		return uiutil.GroupThousands(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return uiutil.GroupThousands(strconv.FormatUint(x, 10))
	case float64:
		return uiutil.FormatQuantity(x)
	default:
		return fmt.Sprint(v)
	}
}

func urgencyClass(urgency any) string {
	switch strings.ToLower(fmt.Sprint(urgency)) {
	case "high":
		return "badge-danger"
	case "medium":
		return "badge-warning"
	case "low":
		return "badge-info"
	default:
		return "badge-light"
	}
}

func derefInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// TruncateText truncates a string to a maximum number of runes (not bytes).
// The maxLen parameter can be any numeric type for template flexibility.
func TruncateText(s string, maxLen any) string {
	n, ok := toIntSafe(maxLen)
	if !ok || n <= 0 {
		return s
	}
	return uiutil.TruncateWithEllipsis(s, n)
}

func toIntSafe(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		return int(val), true
	default:
		return 0, false
	}
}
