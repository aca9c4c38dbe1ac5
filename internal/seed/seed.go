// Package seed holds the demo story used by `retro init --demo` and the
// marketing showcase.
package seed

import "github.com/marcus/retro/internal/models"

// DemoStory returns the sample couple timeline: five chapters spanning
// three years, with reactions and comments pre-filled.
func DemoStory() []models.Event {
	return []models.Event{
		{
			ID:          "ev-primeiro-encontro",
			Title:       "Primeiro encontro",
			Date:        "2022-02-14",
			Description: "Aquele café que virou o capítulo mais importante da nossa história.",
			CoverURL:    "/images/casal-1.svg",
			Location:    "São Paulo",
			Tags:        []string{"Encontro", "Marco"},
			IsMilestone: true,
			Reactions: []models.Reaction{
				{ID: "love", Emoji: "❤️", Count: 18, Reacted: true},
				{ID: "spark", Emoji: "✨", Count: 6},
				{ID: "heart", Emoji: "💫", Count: 4},
			},
			Comments: []models.Comment{
				{ID: "cm-1", Author: "Ana", Message: "Ainda lembro do nosso nervosismo!", Date: "2022-02-15"},
			},
		},
		{
			ID:          "ev-primeira-viagem",
			Title:       "Primeira viagem juntos",
			Date:        "2022-06-12",
			Description: "Três dias no litoral e um pôr do sol inesquecível.",
			CoverURL:    "/images/casal-2.svg",
			Location:    "Ubatuba",
			Tags:        []string{"Viagem", "Praia"},
			Reactions: []models.Reaction{
				{ID: "love", Emoji: "❤️", Count: 9},
				{ID: "spark", Emoji: "✨", Count: 5, Reacted: true},
				{ID: "heart", Emoji: "💫", Count: 2},
			},
			Comments: []models.Comment{
				{ID: "cm-2", Author: "Pedro", Message: "Preciso repetir esse fim de semana.", Date: "2022-06-13"},
			},
		},
		{
			ID:          "ev-novo-lar",
			Title:       "Novo lar",
			Date:        "2023-01-08",
			Description: "Mudamos juntos e criamos nosso cantinho favorito.",
			CoverURL:    "/images/casal-3.svg",
			Location:    "Curitiba",
			Tags:        []string{"Casa", "Mudança"},
			Reactions: []models.Reaction{
				{ID: "love", Emoji: "❤️", Count: 11},
				{ID: "spark", Emoji: "✨", Count: 3},
				{ID: "heart", Emoji: "💫", Count: 1},
			},
		},
		{
			ID:          "ev-aniversario",
			Title:       "Aniversário de namoro",
			Date:        "2023-08-20",
			Description: "Jantar à luz de velas e carta surpresa.",
			CoverURL:    "/images/casal-4.svg",
			Location:    "São Paulo",
			Tags:        []string{"Aniversário", "Romântico"},
			IsMilestone: true,
			Reactions: []models.Reaction{
				{ID: "love", Emoji: "❤️", Count: 22, Reacted: true},
				{ID: "spark", Emoji: "✨", Count: 10},
				{ID: "heart", Emoji: "💫", Count: 7},
			},
			Comments: []models.Comment{
				{ID: "cm-3", Author: "Lia", Message: "Ainda tenho a carta guardada.", Date: "2023-08-21"},
			},
		},
		{
			ID:          "ev-pedido",
			Title:       "Pedido especial",
			Date:        "2024-02-14",
			Description: "O sim mais bonito da nossa vida.",
			CoverURL:    "/images/casal-5.svg",
			Location:    "Gramado",
			Tags:        []string{"Pedido", "Marco"},
			IsMilestone: true,
			Reactions: []models.Reaction{
				{ID: "love", Emoji: "❤️", Count: 30, Reacted: true},
				{ID: "spark", Emoji: "✨", Count: 15},
				{ID: "heart", Emoji: "💫", Count: 9},
			},
			Comments: []models.Comment{
				{ID: "cm-4", Author: "Amigos", Message: "Choramos assistindo vocês.", Date: "2024-02-15"},
			},
		},
	}
}
