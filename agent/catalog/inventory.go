package catalog

// SeedInventory returns the library catalog. In production this would come
// from a real database; the desk backend treats it as fixed reference data.
func SeedInventory() *Inventory {
	inv := NewInventory()

	inv.Add("adan_buenosayres", Book{
		Title:    "Adán Buenosayres",
		Author:   "Leopoldo Marechal",
		Tags:     []string{"NOVEL_EXTENDED", "Experimental", "Argentine Classic"},
		Location: "National Literature Section - Shelf M",
		Copies: []Copy{
			{ID: "AB-001", Condition: "Excellent", Status: StatusAvailable},
			{ID: "AB-002", Condition: "Fair (Highlighted)", Status: StatusBorrowed},
		},
	})
	inv.Add("operation_massacre", Book{
		Title:    "Operation Massacre",
		Author:   "Rodolfo Walsh",
		Tags:     []string{"NON_FICTION", "Journalism", "Chronicle"},
		Location: "Journalism and Chronicle Section",
		Copies: []Copy{
			{ID: "OM-101", Condition: "Good", Status: StatusAvailable},
			{ID: "OM-102", Condition: "Poor (Loose pages)", Status: StatusRepair},
			{ID: "OM-103", Condition: "Excellent", Status: StatusAvailable},
		},
	})
	inv.Add("campos_de_castilla", Book{
		Title:    "Fields of Castile",
		Author:   "Antonio Machado",
		Tags:     []string{"Poetry", "Generation of 98", "Classic"},
		Location: "Spanish Poetry Section - Shelf M",
		Copies: []Copy{
			{ID: "CC-001", Condition: "Excellent", Status: StatusAvailable},
			{ID: "CC-002", Condition: "Fair", Status: StatusAvailable},
		},
	})
	inv.Add("no_habra_penas_olvido", Book{
		Title:    "No More Sorrows or Forgetting",
		Author:   "Osvaldo Soriano",
		Tags:     []string{"Novel", "Dark Humor", "STANDARD"},
		Location: "Latin American Literature Section",
		Copies: []Copy{
			{ID: "NP-050", Condition: "Good", Status: StatusAvailable},
		},
	})
	inv.Add("el_eternauta", Book{
		Title:    "The Eternaut",
		Author:   "Héctor G. Oesterheld & Solano López",
		Tags:     []string{"Comic", "Science Fiction", "Classic", "STANDARD"},
		Location: "Graphic Novel Section - Shelf E",
		Copies: []Copy{
			{ID: "ET-001", Condition: "Excellent (Integral Edition)", Status: StatusAvailable},
			{ID: "ET-002", Condition: "Good (Worn softcover)", Status: StatusBorrowed},
			{ID: "ET-003", Condition: "Poor (Missing final pages)", Status: StatusWithdrawn},
		},
	})
	inv.Add("el_eternauta_ii", Book{
		Title:    "The Eternaut II",
		Author:   "Héctor G. Oesterheld & Solano López",
		Tags:     []string{"Comic", "Politics", "Drama", "NOVEL_EXTENDED"},
		Location: "Graphic Novel Section - Shelf E",
		Copies: []Copy{
			{ID: "ET2-001", Condition: "Excellent", Status: StatusAvailable},
			{ID: "ET2-002", Condition: "Fair (Damaged spine)", Status: StatusAvailable},
		},
	})
	inv.Add("cien_anos_soledad", Book{
		Title:    "One Hundred Years of Solitude",
		Author:   "Gabriel García Márquez",
		Tags:     []string{"NOVEL_EXTENDED", "Magical Realism", "Classic"},
		Location: "Latin American Literature Section - Shelf G",
		Copies: []Copy{
			{ID: "CS-001", Condition: "Excellent", Status: StatusBorrowed},
			{ID: "CS-002", Condition: "Good", Status: StatusAvailable},
		},
	})
	inv.Add("el_tunel", Book{
		Title:    "The Tunnel",
		Author:   "Ernesto Sabato",
		Tags:     []string{"Psychological Novel", "STANDARD"},
		Location: "Argentine Literature Section - Shelf S",
		Copies: []Copy{
			{ID: "TN-001", Condition: "Excellent", Status: StatusAvailable},
		},
	})
	inv.Add("niebla", Book{
		Title:    "Fog",
		Author:   "Miguel de Unamuno",
		Tags:     []string{"Novel", "Nivola", "Generation of 98", "Classic"},
		Location: "Spanish Literature Section - Shelf U",
		Copies: []Copy{
			{ID: "NM-001", Condition: "Excellent", Status: StatusAvailable},
		},
	})
	inv.Add("el_arbol_ciencia", Book{
		Title:    "The Tree of Knowledge",
		Author:   "Pío Baroja",
		Tags:     []string{"Novel", "Generation of 98", "Classic"},
		Location: "Spanish Literature Section - Shelf B",
		Copies: []Copy{
			{ID: "AC-001", Condition: "Good", Status: StatusAvailable},
		},
	})
	inv.Add("el_hombre_que_fue_jueves", Book{
		Title:    "The Man Who Was Thursday",
		Author:   "G. K. Chesterton",
		Tags:     []string{"Novel", "Fiction", "Mystery"},
		Location: "Universal Literature Section - Shelf C",
		Copies: []Copy{
			{ID: "HJ-001", Condition: "Excellent", Status: StatusBorrowed},
		},
	})
	inv.Add("martin_fierro", Book{
		Title:    "The Gaucho Martín Fierro and The Return of Martín Fierro",
		Author:   "José Hernández",
		Tags:     []string{"Poetry", "Epic", "Argentine Classic", "REFERENCE"},
		Location: "National Literature Section - Shelf H",
		Copies: []Copy{
			{ID: "MF-001", Condition: "Excellent (Bilingual Edition)", Status: StatusAvailable},
		},
	})
	inv.Add("los_demonios", Book{
		Title:    "Demons",
		Author:   "Fyodor Dostoevsky",
		Tags:     []string{"NOVEL_EXTENDED", "Russian Classic", "Philosophy"},
		Location: "Universal Literature Section - Shelf D",
		Copies: []Copy{
			{ID: "LD-001", Condition: "Excellent", Status: StatusAvailable},
			{ID: "LD-002", Condition: "Fair", Status: StatusBorrowed},
		},
	})
	inv.Add("cristo_vuelve", Book{
		Title:    "Christ Returns",
		Author:   "Leonardo Castellani",
		Tags:     []string{"Stories", "Religion", "Philosophy"},
		Location: "National Thought Section - Shelf C",
		Copies: []Copy{
			{ID: "CV-001", Condition: "Good", Status: StatusAvailable},
		},
	})
	inv.Add("el_mal_de_siglo", Book{
		Title:    "The Sickness of the Century",
		Author:   "Manuel Gálvez",
		Tags:     []string{"Essay", "Nationalism", "Politics"},
		Location: "Argentine Essay Section - Shelf G",
		Copies: []Copy{
			{ID: "MS-001", Condition: "Excellent", Status: StatusAvailable},
		},
	})
	inv.Add("hombre_busca_sentido", Book{
		Title:    "Man's Search for Meaning",
		Author:   "Viktor Frankl",
		Tags:     []string{"Non-Fiction", "Psychology", "Logotherapy"},
		Location: "Philosophy and Psychology Section - Shelf F",
		Copies: []Copy{
			{ID: "HS-001", Condition: "Excellent", Status: StatusAvailable},
			{ID: "HS-002", Condition: "Good", Status: StatusAvailable},
		},
	})

	return inv
}
