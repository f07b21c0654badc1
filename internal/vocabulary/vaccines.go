package vocabulary

import "strings"

// VaccineName es el catálogo cerrado de vacunas que maneja la app.
type VaccineName string

const (
	VaccineRabies        VaccineName = "Rabia"
	VaccinePolyvalent    VaccineName = "Polivalente"
	VaccineParvovirus    VaccineName = "Parvovirus"
	VaccineDistemper     VaccineName = "Moquillo"
	VaccineLeptospirosis VaccineName = "Leptospirosis"
	VaccineBordetella    VaccineName = "Bordetella"
	VaccineFelineTriple  VaccineName = "Triple Felina"
	VaccineFelineLeuk    VaccineName = "Leucemia Felina"
	// VaccineOther es el centinela para nombres que no reconocemos.
	VaccineOther VaccineName = "Other"
)

// VaccineMatcher asocia fragmentos de texto (en minúsculas) a un valor canónico.
type VaccineMatcher struct {
	Fragments []string
	Name      VaccineName
}

// VaccineTable se evalúa en orden; gana el primer matcher con algún fragmento contenido.
// Las combinadas van antes que sus componentes ("polivalente" suele mencionar parvo/moquillo).
var VaccineTable = []VaccineMatcher{
	{Fragments: []string{"leucemia", "felv"}, Name: VaccineFelineLeuk},
	{Fragments: []string{"triple felina", "trivalente felina", "fvrcp", "felina"}, Name: VaccineFelineTriple},
	{Fragments: []string{"polivalente", "séxtuple", "sextuple", "quíntuple", "quintuple", "óctuple", "octuple", "dhpp"}, Name: VaccinePolyvalent},
	{Fragments: []string{"rabia", "rabies", "antirrábica", "antirrabica"}, Name: VaccineRabies},
	{Fragments: []string{"parvo"}, Name: VaccineParvovirus},
	{Fragments: []string{"moquillo", "distemper"}, Name: VaccineDistemper},
	{Fragments: []string{"lepto"}, Name: VaccineLeptospirosis},
	{Fragments: []string{"bordetella", "tos de las perreras", "kennel"}, Name: VaccineBordetella},
}

// MatchVaccine resuelve texto libre del catálogo remoto contra una tabla ordenada.
func MatchVaccine(table []VaccineMatcher, raw string) VaccineName {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return VaccineOther
	}
	for _, m := range table {
		for _, f := range m.Fragments {
			if f != "" && strings.Contains(s, f) {
				return m.Name
			}
		}
	}
	return VaccineOther
}

// VaccineFromRemote aplica la tabla por defecto.
func VaccineFromRemote(raw string) VaccineName {
	return MatchVaccine(VaccineTable, raw)
}

// VaccineToRemote devuelve el nombre de catálogo que se envía al backend.
func VaccineToRemote(n VaccineName) string {
	if strings.TrimSpace(string(n)) == "" {
		return string(VaccineOther)
	}
	return string(n)
}
