package crm

import (
	"strings"

	"slotbook/models"
)

// Fixed field indexes of the external CRM form. These are a persisted
// third-party contract; changing one silently corrupts submitted leads.
const (
	FieldName             = 6
	FieldEmail            = 7
	FieldCompany          = 8
	FieldWebsite          = 9
	FieldTimezone         = 10
	FieldFocusAreas       = 11
	FieldTargetCountries  = 12
	FieldTimeline         = 13
	FieldPrimaryChallenge = 14
)

// BuildLeadFields maps a booking request onto the CRM's field-index shape.
// Focus areas join with a newline, target countries with ", "; both are
// exact separators the form expects.
func BuildLeadFields(req models.BookingRequest) map[int]string {
	return map[int]string{
		FieldName:             req.Name,
		FieldEmail:            req.Email,
		FieldCompany:          req.Company,
		FieldWebsite:          req.Website,
		FieldTimezone:         req.Timezone,
		FieldFocusAreas:       strings.Join(req.FocusAreas, "\n"),
		FieldTargetCountries:  strings.Join(req.TargetCountries, ", "),
		FieldTimeline:         req.Timeline,
		FieldPrimaryChallenge: req.PrimaryChallenge,
	}
}
