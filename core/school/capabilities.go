package school

// Capabilities tells the presentation layer what the acting role may see and do.
// They gate views only; Reduce and Service.Dispatch never check them.
type Capabilities struct {
	CanManageTeachers  bool `json:"can_manage_teachers"`
	CanViewTeachers    bool `json:"can_view_teachers"`
	CanViewReports     bool `json:"can_view_reports"`
	CanViewAllRecords  bool `json:"can_view_all_records"`
	CanApproveLeave    bool `json:"can_approve_leave"`
	CanRequestLeave    bool `json:"can_request_leave"`
	CanUploadTimetable bool `json:"can_upload_timetable"`
	CanRecordLogs      bool `json:"can_record_logs"`
}

func CapabilitiesFor(role Role) Capabilities {
	switch role {
	case RoleAdmin:
		return Capabilities{
			CanManageTeachers:  true,
			CanViewTeachers:    true,
			CanViewReports:     true,
			CanViewAllRecords:  true,
			CanApproveLeave:    true,
			CanUploadTimetable: true,
			CanRecordLogs:      true,
		}
	case RolePrincipal:
		return Capabilities{
			CanViewTeachers:   true,
			CanViewReports:    true,
			CanViewAllRecords: true,
		}
	case RoleTeacher:
		return Capabilities{CanRequestLeave: true}
	default:
		return Capabilities{}
	}
}
