package report

import (
	"github.com/shreemathi-1/dsrfinal-sub001/internal/domain"
)

// Period buckets used across the DSR forms. onDate is the reporting day,
// fromDate the running total since the financial year start, data2024 the
// calendar-2024 cumulative carried on every sheet.
var (
	allPeriods = []string{"onDate", "fromDate", "data2024"}
	dayPeriods = []string{"onDate", "fromDate"}

	categories = []string{"financial", "nonFinancial"}

	caseStages = []string{
		"received",
		"firRegistered",
		"csrRegistered",
		"acceptedUnderProcess",
		"notAcceptedPending",
		"withdrawal",
		"rejectedNoAction",
		"complaintsClosed",
		"reopen",
	}
)

// descriptors is the single source of truth for every report type: one entry
// per DSR table, declaration order matches the printed daily situation report.
var descriptors = []*Descriptor{
	{
		ID:          "ncrp_complaints",
		Title:       "Complaints Registered through NCRP",
		StorageName: "dsr_ncrp_complaints",
		Fields: categoryPeriodMetrics(Count, categories, allPeriods,
			[]string{"complaints", "firRegistered", "csrIssued"}),
	},
	{
		ID:          "ncrp_disposal",
		Title:       "Disposal of Complaints on NCRP",
		StorageName: "dsr_ncrp_disposal",
		Fields: categoryPeriodMetrics(Count, categories, allPeriods,
			[]string{"disposed", "pending"}),
	},
	{
		ID:          "cctns_complaints",
		Title:       "Complaints Registered through CCTNS",
		StorageName: "dsr_cctns_complaints",
		Fields: categoryPeriodMetrics(Count, categories, allPeriods,
			[]string{"complaints", "firRegistered", "csrIssued"}),
	},
	{
		ID:          "cctns_disposal",
		Title:       "Disposal of Complaints on CCTNS",
		StorageName: "dsr_cctns_disposal",
		Fields: categoryPeriodMetrics(Count, categories, allPeriods,
			[]string{"disposed", "pending"}),
	},
	{
		ID:          "amount_lost_frozen",
		Title:       "Amount Lost, Frozen and Returned",
		StorageName: "dsr_amount_lost_frozen",
		Fields: metricPeriods(Amount, allPeriods,
			"amountLost", "amountFrozen", "amountReturned"),
	},
	{
		ID:          "stages_of_cases",
		Title:       "Stages of Cases",
		StorageName: "dsr_stages_of_cases",
		Fields:      metricPeriods(Count, dayPeriods, caseStages...),
	},
	{
		ID:          "fir_csr_statistics",
		Title:       "FIR and CSR Statistics",
		StorageName: "dsr_fir_csr_statistics",
		Fields: metricPeriods(Count, allPeriods,
			"firRegistered", "csrIssued"),
	},
	{
		ID:          "social_media_requests",
		Title:       "Social Media Blocking Requests",
		StorageName: "dsr_social_media_requests",
		Fields: metricPeriods(Count, allPeriods,
			"requestsReceived", "requestsActioned", "requestsPending"),
	},
	{
		ID:          "social_media_cases",
		Title:       "Social Media Related Cases",
		StorageName: "dsr_social_media_cases",
		Fields: metricPeriods(Count, allPeriods,
			"casesBooked", "personsArrested", "chargesheetsFiled"),
	},
	{
		ID:          "helpline_1930",
		Title:       "1930 Helpline Performance",
		StorageName: "dsr_helpline_1930",
		Fields: append(
			metricPeriods(Count, allPeriods, "callsReceived", "complaintsRegistered"),
			metricPeriods(Amount, allPeriods, "amountLost", "amountFrozen")...),
	},
	{
		ID:          "cyber_volunteers",
		Title:       "Cyber Volunteer Requests",
		StorageName: "dsr_cyber_volunteers",
		Fields: metricPeriods(Count, allPeriods,
			"applicationsReceived", "approved", "rejected", "pending"),
	},
	{
		ID:          "awareness_programs",
		Title:       "Cyber Awareness Programs",
		StorageName: "dsr_awareness_programs",
		Fields: metricPeriods(Count, allPeriods,
			"programsConducted", "participants"),
	},
	{
		ID:          "trainings_attended",
		Title:       "Trainings Attended",
		StorageName: "dsr_trainings_attended",
		Fields: metricPeriods(Count, allPeriods,
			"trainings", "officersTrained"),
	},
	{
		ID:          "lost_mobiles",
		Title:       "Lost Mobile Phone Applications",
		StorageName: "dsr_lost_mobiles",
		Fields: metricPeriods(Count, allPeriods,
			"applicationsReceived", "traced", "recovered", "returned"),
	},
	{
		ID:          "sim_blocking",
		Title:       "SIM Blocking",
		StorageName: "dsr_sim_blocking",
		Fields: metricPeriods(Count, allPeriods,
			"requestsSent", "simsBlocked", "pending"),
	},
	{
		ID:          "imei_blocking",
		Title:       "IMEI Blocking",
		StorageName: "dsr_imei_blocking",
		Fields: metricPeriods(Count, allPeriods,
			"requestsSent", "imeisBlocked", "pending"),
	},
	{
		ID:          "url_blocking",
		Title:       "URL Blocking",
		StorageName: "dsr_url_blocking",
		Fields: metricPeriods(Count, allPeriods,
			"urlsReported", "urlsBlocked", "pending"),
	},
	{
		ID:          "meity_requests",
		Title:       "Blocking Requests sent to MeitY",
		StorageName: "dsr_meity_requests",
		Fields: metricPeriods(Count, allPeriods,
			"requestsSent", "requestsApproved", "pending"),
	},
	{
		ID:          "interpol_requests",
		Title:       "Requests Routed through Interpol",
		StorageName: "dsr_interpol_requests",
		Fields: metricPeriods(Count, allPeriods,
			"requestsSent", "responsesReceived", "pending"),
	},
	{
		ID:          "cyber_pss_staff",
		Title:       "Cyber Police Station Staff Strength",
		StorageName: "dsr_cyber_pss_staff",
		Fields: scalars(Count,
			"sanctionedStrength", "presentStrength", "vacancies"),
	},
	{
		ID:          "investigation_officers",
		Title:       "Investigation Officers",
		StorageName: "dsr_investigation_officers",
		Fields: scalars(Count,
			"totalOfficers", "trainedOfficers", "untrainedOfficers"),
	},
}

var byID = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(descriptors))
	for _, d := range descriptors {
		m[d.ID] = d
	}
	return m
}()

// Resolve returns the descriptor for the given report id, or
// domain.ErrUnknownReportType when the id is not registered.
func Resolve(reportID string) (*Descriptor, error) {
	d, ok := byID[reportID]
	if !ok {
		return nil, domain.ErrUnknownReportType
	}
	return d, nil
}

// All returns every registered descriptor in declaration order.
func All() []*Descriptor {
	return descriptors
}
