package catalog

import (
	"github.com/locato-app/locato-api/internal/domain/media"
	"github.com/locato-app/locato-api/internal/types"
)

// SampleRestaurants returns the bundled Sarajevo dataset. Image URLs go
// through the same heuristic as remote results; Los Amigos is pinned
// because its cuisine label has no table entry.
func SampleRestaurants() []types.Restaurant {
	records := []types.Restaurant{
		{
			ID:            "1",
			Name:          "Ćevabdžinica Željo",
			Rating:        4.9,
			ReviewCount:   3240,
			Cuisine:       "Bosanska",
			Distance:      "0.1 km",
			Address:       "Kundurdžiluk 19, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Institucija Sarajeva. Najpoznatiji ćevapi u gradu, smješteni u srcu Baščaršije. Jednostavan ambijent, ali ukus koji se pamti.",
			MapsURI:       "https://maps.google.com/?q=Cevabdzinica+Zeljo+Kundurdziluk+19",
			OpeningHours:  "08:00 - 23:00",
			ContactNumber: "+387 33 537 969",
			WebsiteURL:    "https://www.cevabdzinicazeljo.ba",
			Reviews: []types.Review{
				{ID: "r1", User: "Marko P.", Rating: 5, Comment: "Jednostavno najbolji!", Date: "Jučer"},
			},
		},
		{
			ID:            "2",
			Name:          "4 Sobe Gospođe Safije",
			Rating:        4.8,
			ReviewCount:   850,
			Cuisine:       "Luksuzna",
			Distance:      "1.5 km",
			Address:       "Čekaluša 61, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Spoj historije, luksuza i vrhunske gastronomije. Idealno mjesto za romantične večere i posebne prilike u prelijepom ambijentu stare bosanske kuće.",
			MapsURI:       "https://maps.google.com/?q=4+Sobe+Gospode+Safije+Cekalusa+61",
			OpeningHours:  "12:00 - 23:00",
			ContactNumber: "+387 33 202 745",
			WebsiteURL:    "http://www.4sobegospodjesafije.ba",
		},
		{
			ID:            "3",
			Name:          "Dveri",
			Rating:        4.7,
			ReviewCount:   1120,
			Cuisine:       "Bosanska",
			Distance:      "0.2 km",
			Address:       "Prote Bakovića 12, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Domaći hljeb, fantastična vina i tradicionalna jela u rustikalnom ambijentu koji oduzima dah. Osjećajte se kao kod kuće.",
			MapsURI:       "https://maps.google.com/?q=Dveri+Sarajevo",
			OpeningHours:  "09:00 - 23:00",
			ContactNumber: "+387 33 537 020",
			WebsiteURL:    "https://dveri.co.ba",
		},
		{
			ID:            "4",
			Name:          "Metropolis",
			Rating:        4.5,
			ReviewCount:   2300,
			Cuisine:       "Kafić",
			Distance:      "0.4 km",
			Address:       "Maršala Tita 21, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Najpopularnije mjesto za kafu i kolače u centru grada kod Vječne vatre. Odlična lokacija za posmatranje gradske vreve.",
			MapsURI:       "https://maps.google.com/?q=Metropolis+Marsala+Tita",
			OpeningHours:  "07:00 - 23:00",
			ContactNumber: "+387 33 267 430",
			WebsiteURL:    "https://www.metropolis.ba",
		},
		{
			ID:            "5",
			Name:          "Avlija",
			Rating:        4.6,
			ReviewCount:   980,
			Cuisine:       "Internacionalna",
			Distance:      "1.8 km",
			Address:       "Avde Sumbula 2, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Šareni vrt pun cvijeća i pozitivne energije na Koševu. Poznati po svojim pohovanim paprikama i opuštenoj atmosferi.",
			MapsURI:       "https://maps.google.com/?q=Avlija+Sarajevo",
			OpeningHours:  "08:00 - 23:00",
			ContactNumber: "+387 33 444 656",
			WebsiteURL:    "https://www.avlija.ba",
		},
		{
			ID:            "6",
			Name:          "Chipas",
			Rating:        4.4,
			ReviewCount:   1500,
			Cuisine:       "Italijanska",
			Distance:      "0.5 km",
			Address:       "Zelenih beretki 14, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Najbolja pasta u gradu po pristupačnim cijenama. Brza usluga i moderan enterijer.",
			MapsURI:       "https://maps.google.com/?q=Chipas+Concept+Sarajevo",
			OpeningHours:  "08:00 - 23:00",
			ContactNumber: "+387 33 222 333",
			WebsiteURL:    "https://www.chipas.ba",
		},
		{
			ID:            "7",
			Name:          "Kibe Mahala",
			Rating:        4.9,
			ReviewCount:   600,
			Cuisine:       "Luksuzna",
			Distance:      "2.5 km",
			Address:       "Vrbanjuša 164, Sarajevo 71000",
			IsOpen:        false,
			Description:   "Spektakularan pogled na Sarajevo uz vrhunsku janjetinu i tradicionalna jela. Obavezna rezervacija.",
			MapsURI:       "https://maps.google.com/?q=Kibe+Mahala",
			OpeningHours:  "12:00 - 23:00",
			ContactNumber: "+387 33 441 936",
			WebsiteURL:    "http://www.kibemahala.ba",
		},
		{
			ID:            "8",
			Name:          "Burger Bar",
			Rating:        4.3,
			ReviewCount:   450,
			Cuisine:       "Fast food",
			Distance:      "0.8 km",
			Address:       "Branilaca Sarajeva 10, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Pravi američki burgeri u srcu Sarajeva. Sočno, veliko i ukusno. Idealno za brzi ručak.",
			MapsURI:       "https://maps.google.com/?q=Burger+Bar+Sarajevo",
			OpeningHours:  "09:00 - 22:00",
			ContactNumber: "+387 62 123 456",
			WebsiteURL:    "https://www.burgerbar.ba",
		},
		{
			ID:            "9",
			Name:          "Sushi San",
			Rating:        4.5,
			ReviewCount:   320,
			Cuisine:       "Azijska kuhinja",
			Distance:      "1.0 km",
			Address:       "Musa Ćazim Ćatić 29, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Svjež sushi i japanski specijaliteti. Mala, ali autentična lokacija blizu Katedrale.",
			MapsURI:       "https://maps.google.com/?q=Sushi+San+Sarajevo",
			OpeningHours:  "11:00 - 22:00",
			ContactNumber: "+387 33 555 666",
			WebsiteURL:    "https://www.sushisan.ba",
		},
		{
			ID:            "10",
			Name:          "Revolucija 1764",
			Rating:        4.5,
			ReviewCount:   890,
			Cuisine:       "Internacionalna",
			Distance:      "0.3 km",
			Address:       "Ferhadija 25, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Moderno mjesto u šetališnoj zoni. Odličan izbor za doručak, ručak ili večernji koktel.",
			MapsURI:       "https://maps.google.com/?q=Revolucija+1764",
			OpeningHours:  "08:00 - 00:00",
			ContactNumber: "+387 33 123 123",
			WebsiteURL:    "https://revolucija1764.ba",
		},
		{
			ID:            "11",
			Name:          "Vatra",
			Rating:        4.4,
			ReviewCount:   1800,
			Cuisine:       "Kafić",
			Distance:      "0.4 km",
			Address:       "Ferhadija 4, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Vrhunske torte i slana jela u samom centru kod Vječne vatre. Uvijek živo i prometno.",
			MapsURI:       "https://maps.google.com/?q=Vatra+Sarajevo",
			OpeningHours:  "07:00 - 23:00",
			ContactNumber: "+387 33 666 777",
			WebsiteURL:    "https://vatra.ba",
		},
		{
			ID:            "12",
			Name:          "Pizzeria Napoli",
			Rating:        4.2,
			ReviewCount:   400,
			Cuisine:       "Italijanska kuhinja",
			Distance:      "1.1 km",
			Address:       "Grbavička 8, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Tradicionalna napolitanska pizza iz krušne peći. Ugodan kvartovski ambijent.",
			MapsURI:       "https://maps.google.com/?q=Pizzeria+Napoli+Sarajevo",
			OpeningHours:  "10:00 - 22:00",
			ContactNumber: "+387 33 888 999",
			WebsiteURL:    "https://pizzerianapoli.ba",
		},
		{
			ID:            "13",
			Name:          "Paper Moon",
			Rating:        4.6,
			ReviewCount:   1100,
			Cuisine:       "Italijanska kuhinja",
			Distance:      "3.0 km",
			Address:       "Hamdije Čemerlića 45, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Kultno mjesto na Grbavici. Odlična pizza i pasta u zanimljivom ambijentu cigle i drveta.",
			MapsURI:       "https://maps.google.com/?q=Paper+Moon+Sarajevo",
			OpeningHours:  "08:00 - 23:00",
			ContactNumber: "+387 33 713 550",
			WebsiteURL:    "https://papermoon.ba",
		},
		{
			ID:            "14",
			Name:          "Klopa",
			Rating:        4.7,
			ReviewCount:   950,
			Cuisine:       "Internacionalna",
			Distance:      "0.3 km",
			Address:       "Ferhadija 5, Sarajevo 71000",
			IsOpen:        true,
			Description:   "Zdrava hrana bez dima cigareta. Fokus na svježim namirnicama i jedinstvenim receptima.",
			MapsURI:       "https://maps.google.com/?q=Klopa+Sarajevo",
			OpeningHours:  "08:00 - 23:00",
			ContactNumber: "+387 33 222 555",
			WebsiteURL:    "https://klopa.ba",
		},
		{
			ID:            "15",
			Name:          "Los Amigos",
			Rating:        4.3,
			ReviewCount:   250,
			Cuisine:       "Meksička kuhinja",
			Distance:      "1.2 km",
			Address:       "Bazardžani 6, Sarajevo 71000",
			IsOpen:        false,
			Description:   "Autentični meksički okusi, tacos i burritos u opuštenoj atmosferi blizu Baščaršije.",
			ImageURL:      "https://images.unsplash.com/photo-1565299585323-38d6b0865b47?auto=format&fit=crop&w=1600&q=95",
			MapsURI:       "https://maps.google.com/?q=Los+Amigos+Sarajevo",
			OpeningHours:  "10:00 - 22:00",
			ContactNumber: "+387 61 999 000",
			WebsiteURL:    "https://losamigos.ba",
		},
	}

	for i := range records {
		if records[i].ImageURL == "" {
			records[i].ImageURL = media.ResolveImage(records[i].Name, records[i].Cuisine)
		}
	}
	return records
}
