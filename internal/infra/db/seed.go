package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamepulse/internal/domain/entity"
	"gamepulse/internal/repository"
)

// Seed loads sample catalog content through the repository interfaces, so
// it works against any storage driver. It is a no-op when articles
// already exist.
func Seed(ctx context.Context, articles repository.ArticleRepository, reviews repository.ReviewRepository) error {
	count, err := articles.Count(ctx)
	if err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	if count > 0 {
		slog.Info("seed skipped, catalog already has content", slog.Int64("articles", count))
		return nil
	}

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)

	sampleArticles := []entity.Article{
		{
			Title:        "GTA VI Reveal Trailer Breaks All-Time Viewing Records",
			Content:      "<p>Rockstar's long-awaited GTA VI trailer has shattered records with over 100 million views in just 24 hours, becoming the most-watched video game trailer in history.</p><p>The trailer, which offers the first official glimpse of the game's setting in Vice City, has generated unprecedented excitement across social media platforms and gaming communities worldwide.</p>",
			Summary:      "Rockstar's long-awaited GTA VI trailer has shattered records with over 100 million views in just 24 hours.",
			ImageURL:     "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=1920&h=1080&q=80",
			Category:     "featured",
			PublishedAt:  now.Add(-12 * time.Hour),
			CommentCount: 358,
			Featured:     true,
		},
		{
			Title:        "Nvidia Announces RTX 5090 With Revolutionary AI Capabilities",
			Content:      "<p>Nvidia has unveiled its next-generation flagship graphics card, the RTX 5090, promising 4x performance improvements over the previous generation and advanced AI processing capabilities.</p><p>The new GPU features 32GB of GDDR7 memory and is built on a 3nm process.</p>",
			Summary:      "The next generation of graphics cards promises 4x performance improvement and advanced AI processing.",
			ImageURL:     "https://images.unsplash.com/photo-1614294149010-950b698f72c0?w=600&h=340&q=80",
			Category:     "pc",
			PublishedAt:  now,
			CommentCount: 24,
		},
		{
			Title:        "PlayStation 5 Pro Specs Leaked: 8K Gaming Is Finally Here",
			Content:      "<p>Insider documents reveal the PS5 Pro will support native 8K gaming at 30fps and feature enhanced ray tracing capabilities far beyond the current PS5 model.</p><p>The new console is expected to include a custom RDNA 3.5 GPU and 16GB of GDDR6 memory.</p>",
			Summary:      "Insider documents reveal the PS5 Pro will support native 8K gaming and feature enhanced ray tracing.",
			ImageURL:     "https://images.unsplash.com/photo-1603481588273-2f908a9a7a1b?w=600&h=340&q=80",
			Category:     "console",
			PublishedAt:  now,
			CommentCount: 87,
		},
		{
			Title:        "Team Liquid Secures $50M Investment, Expands to Asia",
			Content:      "<p>Esports organization Team Liquid has secured a $50 million investment to expand operations across Asian markets, including Japan, South Korea, and Singapore.</p><p>The funding will go toward building new training facilities and recruiting regional talent.</p>",
			Summary:      "The esports giant plans to develop new training facilities and recruit talent across Asian markets.",
			ImageURL:     "https://images.unsplash.com/photo-1560419015-7c427e8ae5ba?w=600&h=340&q=80",
			Category:     "esports",
			PublishedAt:  now,
			CommentCount: 33,
		},
		{
			Title:        "Microsoft Acquires Valve Corporation in Surprise Deal",
			Content:      "<p>In a shocking development, Microsoft has announced the acquisition of Valve Corporation for $8.5 billion, bringing the Steam platform and Half-Life franchise under the Xbox umbrella.</p><p>Microsoft has stated that Steam will continue to operate as an independent storefront.</p>",
			Summary:      "The $8.5 billion acquisition brings Steam and Half-Life into the Xbox ecosystem, reshaping the industry.",
			ImageURL:     "https://images.unsplash.com/photo-1600861194942-f883de0dfe96?w=600&h=340&q=80",
			Category:     "industry",
			PublishedAt:  yesterday,
			CommentCount: 125,
		},
		{
			Title:        "PUBG Mobile Surpasses $10 Billion in Lifetime Revenue",
			Content:      "<p>PUBG Mobile has officially surpassed $10 billion in lifetime revenue, cementing its position as one of the most financially successful mobile games of all time.</p><p>The battle royale title continues to maintain a strong player base five years after its release.</p>",
			Summary:      "The battle royale juggernaut continues to dominate mobile gaming five years after its initial release.",
			ImageURL:     "https://images.unsplash.com/photo-1535223289827-42f1e9919769?w=600&h=340&q=80",
			Category:     "mobile",
			PublishedAt:  yesterday,
			CommentCount: 52,
		},
	}

	sampleReviews := []entity.Review{
		{
			Title:       "Elden Ring: Shadow of the Erdtree",
			Content:     "<p>FromSoftware's massive expansion delivers everything fans could hope for and more, building upon the already incredible foundation of the base game.</p><p>The new areas are hauntingly beautiful, with boss fights that rank among the studio's best work to date.</p>",
			Summary:     "FromSoftware's massive expansion delivers everything fans could hope for and more.",
			ImageURL:    "https://images.unsplash.com/photo-1518908336710-4e1cf821d3d1?w=400&h=230&q=80",
			Category:    "action-rpg",
			Rating:      95,
			PublishedAt: now.Add(-48 * time.Hour),
			Author:      "Alex Chen",
		},
		{
			Title:       "Metal Gear Solid Δ",
			Content:     "<p>Konami's remake of the original Metal Gear Solid is a masterclass in how to modernize a classic without losing its essence. The core stealth gameplay remains as tense and satisfying as ever.</p><p>A few pacing issues in the second half prevent it from achieving absolute perfection.</p>",
			Summary:     "Konami's remake brings Snake's classic mission to modern hardware with stunning results.",
			ImageURL:    "https://images.unsplash.com/photo-1605979257913-1704eb7b6246?w=400&h=230&q=80",
			Category:    "stealth-action",
			Rating:      87,
			PublishedAt: now.Add(-36 * time.Hour),
			Author:      "Sarah Johnson",
		},
		{
			Title:       "Forza Horizon 6",
			Content:     "<p>Playground Games delivers another gorgeous, content-rich racing experience, though the formula is beginning to show signs of age after multiple iterations.</p><p>The new Japanese setting is a visual treat, but many core gameplay loops feel nearly identical to previous entries.</p>",
			Summary:     "Beautiful but familiar, the latest Forza delivers polished racing but few innovations.",
			ImageURL:    "https://images.unsplash.com/photo-1486572788966-cfd3df1f5b42?w=400&h=230&q=80",
			Category:    "racing",
			Rating:      78,
			PublishedAt: now.Add(-7 * 24 * time.Hour),
			Author:      "Marcus Taylor",
		},
		{
			Title:       "Hades II",
			Content:     "<p>Supergiant Games has achieved the nearly impossible task of creating a sequel that surpasses its predecessor in almost every way, with deeper combat systems and more varied environments.</p><p>With its perfect blend of roguelite action and narrative progression, Hades II sets a new standard for the genre.</p>",
			Summary:     "Supergiant's sequel surpasses the original with deeper systems and more varied gameplay.",
			ImageURL:    "https://images.unsplash.com/photo-1594044198814-ad7516dfeac7?w=400&h=230&q=80",
			Category:    "roguelite",
			Rating:      90,
			PublishedAt: now.Add(-10 * 24 * time.Hour),
			Author:      "Emma Rodriguez",
		},
	}

	for i := range sampleArticles {
		if err := articles.Create(ctx, &sampleArticles[i]); err != nil {
			return fmt.Errorf("Seed: article %q: %w", sampleArticles[i].Title, err)
		}
	}
	for i := range sampleReviews {
		if err := reviews.Create(ctx, &sampleReviews[i]); err != nil {
			return fmt.Errorf("Seed: review %q: %w", sampleReviews[i].Title, err)
		}
	}

	slog.Info("seed data loaded",
		slog.Int("articles", len(sampleArticles)),
		slog.Int("reviews", len(sampleReviews)))
	return nil
}
