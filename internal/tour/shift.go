package tour

// ShiftType identifies a work shift.
type ShiftType string

const (
	ShiftEarly ShiftType = "early"
	ShiftLate  ShiftType = "late"
	ShiftNight ShiftType = "night"
)

// lateShiftHour is the clock hour from which a task is considered part
// of the late shift.
const lateShiftHour = 14

// ShiftForHour infers the shift for a clock hour: before 14:00 is the
// early shift, everything else the late shift. The night shift is never
// inferred; it must be declared explicitly.
func ShiftForHour(hour int) ShiftType {
	if hour < lateShiftHour {
		return ShiftEarly
	}
	return ShiftLate
}

// ShiftTimeRange returns the nominal clock window of a shift.
func ShiftTimeRange(s ShiftType) (start, end string) {
	switch s {
	case ShiftLate:
		return "14:00", "22:00"
	case ShiftNight:
		return "22:00", "06:00"
	default:
		return "06:00", "14:00"
	}
}

// ShiftLabel returns the German display name of a shift.
func ShiftLabel(s ShiftType) string {
	switch s {
	case ShiftEarly:
		return "Frühschicht"
	case ShiftLate:
		return "Spätschicht"
	case ShiftNight:
		return "Nachtschicht"
	default:
		return string(s)
	}
}

// TaskTypeLabel returns the German display name of a task type.
func TaskTypeLabel(t TaskType) string {
	labels := map[TaskType]string{
		TypeMedikamente:        "Medikamente",
		TypeKoerperpflege:      "Körperpflege",
		TypeMobilisation:       "Mobilisation",
		TypeWundversorgung:     "Wundversorgung",
		TypeErnaehrung:         "Ernährung",
		TypeDokumentation:      "Dokumentation",
		TypeArztbesuch:         "Arztbesuch",
		TypeFreizeitgestaltung: "Freizeitgestaltung",
	}
	if l, ok := labels[t]; ok {
		return l
	}
	return string(t)
}

// QualificationLabel returns the German display name of a qualification.
func QualificationLabel(q Qualification) string {
	labels := map[Qualification]string{
		QualMedikamente:          "Medikamentengabe",
		QualWundversorgung:       "Wundversorgung",
		QualGrundpflege:          "Grundpflege",
		QualBehandlungspflege:    "Behandlungspflege",
		QualDemenzbetreuung:      "Demenzbetreuung",
		QualPalliativpflege:      "Palliativpflege",
		QualInsulinverabreichung: "Insulinverabreichung",
	}
	if l, ok := labels[q]; ok {
		return l
	}
	return string(q)
}
