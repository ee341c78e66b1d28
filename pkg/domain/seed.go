package domain

// Seed fixtures bootstrap an empty backend on first run and back the
// local cache when nothing else is available.

// SeedAccounts returns the fixture identities.
func SeedAccounts() []Account {
	return []Account{
		{
			ID:         "admin-dg",
			Email:      "dg@credema.finance",
			Name:       "Credema Director",
			Role:       RoleAdmin,
			EntityName: "CREDEMA.Finance HQ",
			Status:     StatusApproved,
		},
		{
			ID:         "investor-001",
			Email:      "daniel-grossmann@hotmail.com",
			Name:       "Daniel Grossmann",
			Role:       RoleSeedInvestor,
			EntityName: "Grossmann Ventures",
			Status:     StatusApproved,
		},
	}
}

// SeedDeals returns the fixture funding opportunities.
func SeedDeals() []Deal {
	return []Deal{
		{
			ID:          "CD-2026-001",
			OwnerID:     "founder-001",
			CompanyName: "NovaSynthetix AI",
			Tagline:     "Generative protein synthesis at scale.",
			Location:    "San Francisco, CA",
			Sector:      "DeepTech",
			Stage:       StageSeed,
			Description: "NovaSynthetix is building the future of drug discovery using transformer architectures to predict molecular binding sites with 99% accuracy.",

			RaisingAmount: 2000000,
			Instrument:    InstrumentSAFE,
			Valuation:     12000000,
			ValuationType: "CAP",
			MinTicket:     50000,
			InvestorNote:  "Strong technical team from DeepMind. Early pilot with Tier-1 Pharma.",

			LeverageAmount:     1000000,
			DepositAmount:      200000,
			LeverageMultiplier: 5,
			TermMonths:         24,
			MonthsElapsed:      4,

			WalletStatus:    WalletVerified,
			WalletAddress:   "0x71C7656EC7ab88b098defB751B7401B5f6d8976F",
			LastOracleCheck: "2026-01-24",

			GrowthMetrics: GrowthMetrics{
				CAC:            1500,
				ROAS:           3.2,
				MonthlyAdSpend: 45000,
				ConversionRate: 0.12,
			},
			ProductMetrics: ProductMetrics{
				BurnRate:          85000,
				RunwayMonths:      14,
				GithubCommits:     1250,
				RoadmapCompletion: 0.65,
				BetaUsers:         120,
			},
			Context: DealContext{
				Problem:        "Traditional drug discovery takes 10 years and costs billions. 90% of candidates fail in trials.",
				Solution:       "Our AI platform reduces simulation time from months to hours using high-fidelity generative models.",
				MarketStrategy: "Licensing platform to mid-size biotech firms to accelerate their pipeline.",
				Competition:    "Schrödinger, but we are 10x faster for specific protein classes.",
				TeamBackground: "Ex-Google DeepMind researchers and Pfizer computational biologists.",
				UseOfFunds:     "Hiring more ML engineers and securing H100 compute clusters.",
			},

			SeedInvestorVerified: true,
			Status:               DealActive,
		},
	}
}

// SeedPosts returns the fixture blog library.
func SeedPosts() []BlogPost {
	return []BlogPost{
		{
			ID: "1",
			Title: Localized{
				LangEN: "The Distribution Bottleneck",
				LangDE: "Der Vertriebs-Engpass",
				LangFR: "Le goulot de la distribution",
			},
			Excerpt: Localized{
				LangEN: "In 2026, building software is cheap, but getting users is expensive.",
				LangDE: "Software ist billig, Nutzergewinnung ist teuer.",
				LangFR: "Le logiciel est peu coûteux, l'acquisition est chère.",
			},
			Content: Localized{
				LangEN: "## Distribution is Strategy\n\nStartups fail because they cannot reach customers profitably. By utilizing the CREDEMA.Finance triangular model, founders fund acquisition using non-dilutive leverage instead of equity, keeping the cap table clean while the growth engine runs on institutional fuel.",
				LangDE: "## Vertrieb ist Strategie\n\nStartups scheitern, weil sie Kunden nicht profitabel erreichen können. Mit dem CREDEMA.Finance-Modell finanzieren Gründer die Akquisition durch nicht-verwässernden Hebel statt Eigenkapital.",
				LangFR: "## La distribution est une stratégie\n\nLes startups échouent car elles n'atteignent pas leurs clients de manière rentable. Via le modèle CREDEMA.Finance, les fondateurs financent l'acquisition par levier non dilutif.",
			},
			Category: Localized{LangEN: "Strategy", LangDE: "Strategie", LangFR: "Stratégie"},
			ReadTime: Localized{LangEN: "5 min", LangDE: "5 Min", LangFR: "5 min"},
			Date:     Localized{LangEN: "Jan 2, 2026", LangDE: "2. Jan 2026", LangFR: "2 jan. 2026"},
			Author: Author{
				Name: "Eric Gaudin",
				Role: Localized{LangEN: "Director", LangDE: "Direktor", LangFR: "Directeur"},
			},
			Image: "https://images.unsplash.com/photo-1551288049-bebda4e38f71?auto=format&fit=crop&q=80&w=2070",
		},
		{
			ID: "2",
			Title: Localized{
				LangEN: "Collateralized Confidence",
				LangDE: "Besichertes Vertrauen",
				LangFR: "Confiance Garantie",
			},
			Excerpt: Localized{
				LangEN: "How physical conviction transforms early-stage risk profiles.",
				LangDE: "Wie physische Überzeugung das Risikoprofil verändert.",
				LangFR: "Comment la conviction physique transforme le risque.",
			},
			Content: Localized{
				LangEN: "## The End of Gut-Feeling\n\nWhen a founder places a 20% deposit in escrow, they prove unit economics. This skin in the game lowers the risk premium for institutional providers: we verify numbers instead of betting on people.",
				LangDE: "## Das Ende des Bauchgefühls\n\nWenn ein Gründer 20% Einlage leistet, beweist er seine Einheitsökonomie. Dieses Engagement senkt die Risikoprämie für Hebelgeber.",
				LangFR: "## La fin de l'intuition\n\nQuand un fondateur dépose 20% en séquestre, il prouve son modèle. Cet engagement réduit la prime de risque pour les prêteurs.",
			},
			Category: Localized{LangEN: "Finance", LangDE: "Finanzen", LangFR: "Finance"},
			ReadTime: Localized{LangEN: "4 min", LangDE: "4 Min", LangFR: "4 min"},
			Date:     Localized{LangEN: "Jan 5, 2026", LangDE: "5. Jan 2026", LangFR: "5 jan. 2026"},
			Author: Author{
				Name: "Institutional Research",
				Role: Localized{LangEN: "Analyst", LangDE: "Analyst", LangFR: "Analyste"},
			},
			Image: "https://images.unsplash.com/photo-1460925895917-afdab827c52f?auto=format&fit=crop&q=80&w=2070",
		},
		{
			ID: "3",
			Title: Localized{
				LangEN: "AI Infrastructure Funding",
				LangDE: "KI-Infrastruktur Finanzierung",
				LangFR: "Financer l'IA",
			},
			Excerpt: Localized{
				LangEN: "GPUs are the new real estate of the 2026 economy.",
				LangDE: "GPUs sind die neuen Immobilien der Wirtschaft 2026.",
				LangFR: "Les GPU sont le nouvel immobilier de l'économie 2026.",
			},
			Content: Localized{
				LangEN: "## Financing Compute\n\nGPU clusters are the new factories. Using equity for recurring infrastructure is a strategic error. CREDEMA.Finance treats intelligence as an asset, allowing startups to secure growth facilities against compute revenue.",
				LangDE: "## Rechenleistung finanzieren\n\nGPU-Cluster sind die neuen Fabriken. Eigenkapital für Infrastruktur zu nutzen ist ein Fehler. CREDEMA.Finance behandelt Intelligenz als Aktivposten.",
				LangFR: "## Financer le calcul\n\nLes clusters GPU sont les nouvelles usines. CREDEMA.Finance traite l'intelligence comme un actif, sécurisant le levier sur les revenus de calcul.",
			},
			Category: Localized{LangEN: "AI", LangDE: "KI", LangFR: "IA"},
			ReadTime: Localized{LangEN: "4 min", LangDE: "4 Min", LangFR: "4 min"},
			Date:     Localized{LangEN: "Jan 8, 2026", LangDE: "8. Jan 2026", LangFR: "8 jan. 2026"},
			Author: Author{
				Name: "Eric Gaudin",
				Role: Localized{LangEN: "Director", LangDE: "Direktor", LangFR: "Directeur"},
			},
			Image: "https://images.unsplash.com/photo-1677442136019-21780ecad995?auto=format&fit=crop&q=80&w=2070",
		},
	}
}
