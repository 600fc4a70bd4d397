// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/bookfinder/pkg/types"

// Seed returns the curated catalog. Entries are hand-verified, so results
// drawn from the catalog are treated as grounded by provenance.
func Seed() []types.Candidate {
	return []types.Candidate{
		{
			ID:             "catalog:yoga-sutras-patanjali",
			Title:          "Yoga Sutras of Patanjali",
			Author:         "Patanjali",
			Description:    "The foundational text of classical yoga: 196 aphorisms on stilling the mind, the eight limbs of practice, and liberation.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/yoga-sutras-patanjali",
			Price:          types.PriceOf(299),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Yoga Philosophy",
			KeyTopics:      []string{"Yoga", "Sutra"},
			TheologicalTags: []string{
				"samadhi", "dhyana", "kaivalya",
			},
			TableOfContents: []string{
				"Samadhi Pada", "Sadhana Pada", "Vibhuti Pada", "Kaivalya Pada",
			},
		},
		{
			ID:             "catalog:bhagavad-gita-as-it-is",
			Title:          "Bhagavad Gita As It Is",
			Author:         "A.C. Bhaktivedanta Swami Prabhupada",
			Description:    "Translation and commentary on the Gita's seven hundred verses on duty, devotion, and the nature of the self.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/bhagavad-gita-as-it-is",
			Price:          types.PriceOf(350),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Scripture",
			KeyTopics:      []string{"Gita", "Dharma", "Devotion"},
			TheologicalTags: []string{
				"bhakti", "karma", "dharma",
			},
		},
		{
			ID:             "catalog:autobiography-of-a-yogi",
			Title:          "Autobiography of a Yogi",
			Author:         "Paramahansa Yogananda",
			Description:    "Yogananda's account of his search among saints and masters of India and the science of Kriya Yoga.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/autobiography-of-a-yogi",
			Price:          types.PriceOf(199),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Spiritual Memoir",
			KeyTopics:      []string{"Yoga", "Kriya", "Saints"},
			TheologicalTags: []string{
				"kriya", "guru", "samadhi",
			},
		},
		{
			ID:             "catalog:osho-meditation-first-last-freedom",
			Title:          "Meditation: The First and Last Freedom",
			Author:         "Osho",
			Description:    "A practical guide to meditation with over sixty techniques, from Vipassana to dynamic meditation.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/meditation-first-last-freedom",
			Price:          types.PriceOf(450),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Meditation",
			KeyTopics:      []string{"Meditation", "Awareness"},
			TheologicalTags: []string{
				"dhyana", "witnessing",
			},
			TableOfContents: []string{
				"What Is Meditation", "The Science of Techniques", "Obstacles", "Questions",
			},
		},
		{
			ID:             "catalog:raja-yoga-vivekananda",
			Title:          "Raja Yoga",
			Author:         "Swami Vivekananda",
			Description:    "Vivekananda's lectures on the royal path of meditation, with his translation of Patanjali's aphorisms.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/raja-yoga",
			Price:          types.PriceOf(150),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Yoga Philosophy",
			KeyTopics:      []string{"Yoga", "Meditation", "Pranayama"},
			TheologicalTags: []string{
				"raja yoga", "samadhi", "pranayama",
			},
		},
		{
			ID:             "catalog:upanishads-easwaran",
			Title:          "The Upanishads",
			Author:         "Eknath Easwaran",
			Description:    "Accessible translation of the principal Upanishads with chapter introductions.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/upanishads-easwaran",
			Price:          types.PriceOf(275),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Scripture",
			KeyTopics:      []string{"Upanishads", "Vedanta"},
			TheologicalTags: []string{
				"vedanta", "brahman", "atman",
			},
		},
		{
			ID:             "catalog:power-of-now",
			Title:          "The Power of Now",
			Author:         "Eckhart Tolle",
			Description:    "A guide to presence: ending identification with the thinking mind and living in the present moment.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/power-of-now",
			Price:          types.PriceOf(399),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Mindfulness",
			KeyTopics:      []string{"Presence", "Mindfulness", "Consciousness"},
			TheologicalTags: []string{
				"presence", "ego",
			},
		},
		{
			ID:             "catalog:inner-engineering",
			Title:          "Inner Engineering: A Yogi's Guide to Joy",
			Author:         "Sadhguru",
			Description:    "Sadhguru on the mechanics of wellbeing and the yogic science of shaping one's inner life.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/inner-engineering",
			Price:          types.PriceOf(320),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Yoga Philosophy",
			KeyTopics:      []string{"Yoga", "Wellbeing"},
			TheologicalTags: []string{
				"kriya", "karma",
			},
		},
		{
			ID:             "catalog:dhammapada-easwaran",
			Title:          "The Dhammapada",
			Author:         "Eknath Easwaran",
			Description:    "The Buddha's path of wisdom in 423 verses, translated with commentary.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/dhammapada",
			Price:          types.PriceOf(250),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Buddhism",
			KeyTopics:      []string{"Dhammapada", "Buddhism", "Wisdom"},
			TheologicalTags: []string{
				"nirvana", "dharma",
			},
		},
		{
			ID:             "catalog:freedom-from-the-known",
			Title:          "Freedom from the Known",
			Author:         "Jiddu Krishnamurti",
			Description:    "Krishnamurti on fear, conditioning, and seeing without the screen of accumulated knowledge.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/freedom-from-the-known",
			Price:          types.PriceOf(225),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Philosophy",
			KeyTopics:      []string{"Freedom", "Conditioning", "Awareness"},
			TheologicalTags: []string{
				"choiceless awareness",
			},
		},
		{
			ID:             "catalog:be-here-now",
			Title:          "Be Here Now",
			Author:         "Ram Dass",
			Description:    "The journey from Harvard psychologist to devotee of Neem Karoli Baba, with a manual for conscious being.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/be-here-now",
			Price:          types.PriceOf(499),
			Currency:       types.CurrencyINR,
			IsAvailable:    false,
			Language:       "English",
			Category:       "Spiritual Memoir",
			KeyTopics:      []string{"Presence", "Devotion"},
			TheologicalTags: []string{
				"bhakti", "guru",
			},
		},
		{
			ID:             "catalog:tao-te-ching-mitchell",
			Title:          "Tao Te Ching",
			Author:         "Stephen Mitchell",
			Description:    "Mitchell's rendering of Lao Tzu's classic on the way and its power.",
			SourceProvider: types.ProviderCatalog,
			SourceURL:      "https://example.org/catalog/tao-te-ching",
			Price:          types.PriceOf(180),
			Currency:       types.CurrencyINR,
			IsAvailable:    true,
			Language:       "English",
			Category:       "Taoism",
			KeyTopics:      []string{"Tao", "Wu Wei"},
			TheologicalTags: []string{
				"tao", "wu wei",
			},
		},
	}
}
