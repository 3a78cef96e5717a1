package core

import (
	"CallRelay/entity"
	"CallRelay/internal/lib/format"
	"strings"
)

const notesFieldID = "7"

type fieldSpec struct {
	id      string
	aliases []string
	format  func(string) string
}

// quickBaseFields maps QuickBase field ids to the CallTools spellings of the
// same value, most common spelling first.
var quickBaseFields = []fieldSpec{
	{id: "92", aliases: []string{"first_name", "firstName", "fname", "FirstName"}},
	{id: "93", aliases: []string{"last_name", "lastName", "lname", "LastName"}},
	{id: "159", aliases: []string{"spouse_name", "spouseName", "spouse", "SpouseName"}},
	{id: "95", aliases: []string{"address", "street", "address1", "street_address", "Address", "StreetAddress"}},
	{id: "97", aliases: []string{"city", "City"}},
	{id: "98", aliases: []string{"state", "State", "st"}, format: format.State},
	{id: "99", aliases: []string{"zip", "zipcode", "zip_code", "postal_code", "Zip", "ZipCode"}, format: format.Zip},
	{id: "108", aliases: []string{"home_phone", "homePhone", "home", "HomePhone"}, format: format.Phone},
	{id: "109", aliases: []string{"cell_phone", "cellPhone", "cell", "mobile", "phone", "Phone", "CellPhone", "MobilePhone"}, format: format.Phone},
	{id: "110", aliases: []string{"alt_phone", "altPhone", "alternate_phone", "work_phone", "AltPhone"}, format: format.Phone},
	{id: "111", aliases: []string{"email", "email_address", "Email", "EmailAddress"}},
	{id: "160", aliases: []string{"branch", "Branch", "office"}},
	{id: "11", aliases: []string{"appointment_date", "appointmentDate", "appt_date", "AppointmentDate"}, format: format.Date},
	{id: "126", aliases: []string{"appointment_time", "appointmentTime", "appt_time", "AppointmentTime"}},
	{id: "184", aliases: []string{"campaign_id", "campaignId", "campaign", "CampaignId", "Campaign"}},
	{id: "15", aliases: []string{"product", "Product", "service", "Service"}},
	{id: "54", aliases: []string{"lead_source", "leadSource", "source", "LeadSource"}},
	{id: "177", aliases: []string{"lead_source_subcategory", "leadSourceSubcategory", "subcategory", "LeadSourceSubcategory"}},
}

var dispositionAliases = []string{"disposition", "Disposition", "call_disposition", "CallDisposition", "status", "Status"}

type noteSpec struct {
	label   string
	aliases []string
}

var noteSections = []noteSpec{
	{label: "Disposition", aliases: []string{"disposition", "Disposition", "call_disposition", "CallDisposition"}},
	{label: "Agent", aliases: []string{"agent", "Agent", "agent_name", "agentName", "user", "User", "rep", "representative"}},
	{label: "Duration", aliases: []string{"call_duration", "callDuration", "duration", "Duration", "talk_time", "talkTime"}},
	{label: "Campaign", aliases: []string{"campaign", "Campaign", "campaign_name", "campaignName"}},
	{label: "List", aliases: []string{"list", "List", "list_name", "listName", "lead_list", "leadList"}},
	{label: "Notes", aliases: []string{"notes", "Notes", "comments", "Comments", "note", "call_notes", "callNotes"}},
}

// en-US locale rendering, e.g. 3/5/2024, 1:04:05 PM
const notesTimeLayout = "1/2/2006, 3:04:05 PM"

// MapToQuickBase builds every known field of the record. Empty values are
// kept; the QuickBase service drops them before submission.
func (c *Core) MapToQuickBase(event *entity.CallEvent) entity.QuickBaseRecord {
	record := make(entity.QuickBaseRecord, len(quickBaseFields)+1)
	for _, spec := range quickBaseFields {
		value := event.Field(spec.aliases...)
		if spec.format != nil {
			value = spec.format(value)
		}
		record[spec.id] = entity.FieldValue{Value: value}
	}
	record[notesFieldID] = entity.FieldValue{Value: c.BuildNotes(event)}
	return record
}

// BuildNotes assembles the call summary stored in the notes field.
func (c *Core) BuildNotes(event *entity.CallEvent) string {
	timestamp := c.now().In(c.notesLoc).Format(notesTimeLayout)

	lines := []string{"[CallTools - " + timestamp + "]"}
	for _, section := range noteSections {
		if value := event.Field(section.aliases...); value != "" {
			lines = append(lines, section.label+": "+value)
		}
	}
	return strings.Join(lines, "\n")
}
