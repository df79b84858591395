package registry

// BuiltinCoaches is the minimal fallback coach table used when no reference
// file is configured or it fails to load. Keeping a usable default means
// resolution degrades instead of the process refusing to start.
func BuiltinCoaches() []Entry {
	return []Entry{
		{CanonicalName: "Jenny", FirstName: "Jenny", LastName: "Duan", Aliases: []string{"Jenny Duan", "Coach Jenny"}, EmailLocalPart: "jenny.duan"},
		{CanonicalName: "Noor", FirstName: "Noor", LastName: "Hassan", Aliases: []string{"Noor Hassan", "Coach Noor"}, EmailLocalPart: "noor.hassan"},
		{CanonicalName: "Marcus", FirstName: "Marcus", LastName: "Lee", Aliases: []string{"Marcus Lee", "Coach Marcus"}, EmailLocalPart: "marcus.lee"},
	}
}

// BuiltinStudents is the minimal fallback student table.
func BuiltinStudents() []Entry {
	return []Entry{
		{CanonicalName: "Arshiya", FirstName: "Arshiya", LastName: "Kapoor", Aliases: []string{"Arshiya Kapoor"}, ParentNames: []string{"Ritu Kapoor"}},
		{CanonicalName: "Priya", FirstName: "Priya", LastName: "Sharma", Aliases: []string{"Priya Sharma"}, ParentNames: []string{"Anil Sharma"}},
		{CanonicalName: "Daniel", FirstName: "Daniel", LastName: "Okafor", Aliases: []string{"Daniel Okafor", "Danny"}, ParentNames: []string{"Grace Okafor"}},
	}
}
