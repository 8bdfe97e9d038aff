package rescisao

import "github.com/shopspring/decimal"

// ReasonInfo describes a termination reason for clients building forms.
type ReasonInfo struct {
	Reason              Reason
	Label               string
	FGTSPenaltyRate     decimal.Decimal
	DisabilityIndemnity bool
}

// Reasons lists the known termination reasons in display order.
func Reasons() []ReasonInfo {
	infos := make([]ReasonInfo, len(knownReasons))
	for i, r := range knownReasons {
		infos[i] = ReasonInfo{
			Reason:              r,
			Label:               r.Label(),
			FGTSPenaltyRate:     r.FGTSPenaltyRate(),
			DisabilityIndemnity: r.DisabilityIndemnityEligible(),
		}
	}
	return infos
}

// NoticeInfo describes a notice type.
type NoticeInfo struct {
	NoticeType NoticeType
	Label      string
	Default    bool
}

// NoticeTypes lists the accepted notice tags; any other tag is paid as a
// reduced notice.
func NoticeTypes() []NoticeInfo {
	types := []NoticeType{NoticeIndemnified, NoticeWorked}
	infos := make([]NoticeInfo, len(types))
	for i, n := range types {
		infos[i] = NoticeInfo{NoticeType: n, Label: n.Label(), Default: n == DefaultNoticeType}
	}
	return infos
}
