package store

import "github.com/sharadgeorge/oncall-converter/internal/model"

// seedEmployees built-in roster used to populate a fresh directory
// database. Kept in insertion order; the resolver depends on it.
var seedEmployees = []model.EmployeeDirectoryEntry{
	// Radiology
	{Username: "allwo0f", Initials: "AK", FullName: "Dr. Allison Livingston", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "audr95t", Initials: "AO", FullName: "Dr. Audrey Randy", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "ellias4", Initials: "AS", FullName: "Dr. Ankur Simran Ellison", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "lotta3", Initials: "AT", FullName: "Dr. Angela Lotti", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "figeftr", Initials: "FT", FullName: "Dr. Fernando Figer", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "hauser4", Initials: "IG", FullName: "Dr. Irvin Garrett Hauser", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "kaisbam", Initials: "LK", FullName: "Dr. Barry Midland Kaiser", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "bellam5", Initials: "MB", FullName: "Dr. Monica Bella", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "chengme", Initials: "MC", FullName: "Dr. Milkha Chengi", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "fakma0e", Initials: "MF", FullName: "Dr. Maria Nargis", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "mumir4", Initials: "MM", FullName: "Dr. Mir Miranda", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "nilanin", Initials: "NN", FullName: "Dr. Nayan Nilani", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "hernapat", Initials: "PR", FullName: "Dr. Paul Hernandez", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "gonzsa2", Initials: "SG", FullName: "Dr. Gonzales, Salem", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "alitar3b", Initials: "TA", FullName: "Dr. Tarzan Ali", Roles: []string{"1056"}, Department: "Radiology"},
	{Username: "ignaro5w", Initials: "RI", FullName: "Dr. Roberta Ignatius", Roles: []string{"1056"}, Department: "Radiology"},

	// Cardiology
	{Username: "qulfi6e", Initials: "Q", FullName: "Qureshi", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "salam0c", Initials: "S", FullName: "Salami", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "mehndo4e", Initials: "M", FullName: "M. Enadi", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "lipar45", Initials: "L", FullName: "L. Parivar", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "alsind34", Initials: "AS", FullName: "Le Sindapur", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "formi57r", Initials: "F99", FullName: "Fox Machar", Roles: []string{"3042457"}, Department: "Cardiology"},
	{Username: "purita5", Initials: "P99", FullName: "P Bhajra", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "konasje", Initials: "K99", FullName: "Konsa", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "bhenjt4", Initials: "B99", FullName: "Ben Ji", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "maskirt3", Initials: "Q99", FullName: "Mesquita N", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "vahard3g", Initials: "V99", FullName: "Vaha Robert", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "lukolnd", Initials: "L99", FullName: "Lu K. Olna", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "sponset5", Initials: "S99", FullName: "Sp F Sed", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "tamasho", Initials: "T99", FullName: "Tamhane", Roles: []string{"72"}, Department: "Cardiology"},
	{Username: "fouza64w", Initials: "F992", FullName: "F Ouza Wik", Roles: []string{"47"}, Department: "Cardiology"},
	{Username: "dosa0b", Initials: "AG", FullName: "Anita Gunda", Roles: []string{"2001"}, Department: "Cardiology"},
	{Username: "ghas4g", Initials: "GS", FullName: "Ghaitani S", Roles: []string{"84", "2001"}, Department: "Cardiology"},
	{Username: "abherq", Initials: "AE", FullName: "Abe E M", Roles: []string{"84"}, Department: "Cardiology"},
	{Username: "villfh", Initials: "VL", FullName: "Village Lomba", Roles: []string{"84"}, Department: "Cardiology"},
}

// SeedIfEmpty populates a fresh database with the built-in roster.
func (s *Store) SeedIfEmpty() error {
	n, err := s.CountEmployees()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return s.BatchInsertEmployees(seedEmployees)
}
