package mock

// MockStudents are complete inputs for a session, keyed by menu selection code.
var MockStudents = []struct {
	Name         string
	Selection    int
	Registration string
	Marks        []int
}{
	{
		Name:         "Amina Wanjiru",
		Selection:    1,
		Registration: "BSE-01-0005/2026",
		Marks:        []int{35, 45, 55, 65, 95, 100},
	},
	{
		Name:         "Brian Otieno",
		Selection:    2,
		Registration: "BCS-02-0117/2025",
		Marks:        []int{40, 40, 40, 40, 40},
	},
	{
		Name:         "Cynthia Mwangi",
		Selection:    3,
		Registration: "BSCIT-03-0042/2026",
		Marks:        []int{12, 90, 39, 70, 89, 0},
	},
	{
		Name:         "David Kiprono",
		Selection:    1,
		Registration: "BSE-99-0000/0000",
		Marks:        []int{90, 90, 90, 90, 90, 90},
	},
}
