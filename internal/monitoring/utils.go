package monitoring

import "strings"

// getSegmentName shortens a runtime function name to package.receiver.method,
// e.g. ".../internal/services.(*ledger).GetLedger" becomes "services.ledger.GetLedger".
func getSegmentName(fullFuncName string) string {
	name := fullFuncName[strings.LastIndex(fullFuncName, "/")+1:]

	parts := strings.Split(name, ".")
	segments := parts[:0]
	for _, p := range parts {
		if p = strings.Trim(p, "(*)"); p != "" {
			segments = append(segments, p)
		}
	}
	if len(segments) == 0 {
		return fullFuncName
	}

	return strings.Join(segments, ".")
}
