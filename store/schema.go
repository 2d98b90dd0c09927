package store

// schema is applied on every Open; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT CHECK(role IN ('admin', 'faculty', 'student')) DEFAULT 'student',
		avatar TEXT DEFAULT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT UNIQUE NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT,
		icon TEXT DEFAULT '📰',
		color TEXT DEFAULT '#3b82f6',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS news (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT NOT NULL,
		content TEXT,
		category_id INTEGER NOT NULL,
		priority INTEGER DEFAULT 1 CHECK(priority BETWEEN 1 AND 5),
		author_id INTEGER NOT NULL,
		image_url TEXT,
		is_pinned BOOLEAN DEFAULT 0,
		views INTEGER DEFAULT 0,
		status TEXT CHECK(status IN ('draft', 'published', 'archived')) DEFAULT 'published',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE,
		FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS alumni_profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		batch_year INTEGER NOT NULL,
		branch TEXT DEFAULT 'CSE',
		company TEXT,
		role TEXT,
		avatar_url TEXT,
		bio TEXT,
		career_update TEXT,
		linkedin_url TEXT,
		email TEXT,
		is_mentor BOOLEAN DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS mentorship_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_name TEXT NOT NULL,
		student_email TEXT NOT NULL,
		alumni_id INTEGER NOT NULL,
		topic TEXT NOT NULL,
		message TEXT,
		scheduled_time TEXT,
		status TEXT CHECK(status IN ('pending','confirmed','completed','cancelled')) DEFAULT 'pending',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (alumni_id) REFERENCES alumni_profiles(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS industry_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		alumni_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		tags TEXT DEFAULT 'CSE',
		likes INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (alumni_id) REFERENCES alumni_profiles(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS qa_questions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_name TEXT NOT NULL,
		question TEXT NOT NULL,
		company_context TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS qa_answers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		question_id INTEGER NOT NULL,
		alumni_id INTEGER NOT NULL,
		answer TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (question_id) REFERENCES qa_questions(id) ON DELETE CASCADE,
		FOREIGN KEY (alumni_id) REFERENCES alumni_profiles(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS clubs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		category TEXT NOT NULL DEFAULT 'Tech',
		description TEXT,
		logo_url TEXT,
		cover_url TEXT,
		founded_year INTEGER,
		member_count INTEGER DEFAULT 0,
		contact_email TEXT,
		instagram_url TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS club_posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		club_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		image_url TEXT,
		post_type TEXT CHECK(post_type IN ('event','achievement','announcement','project','recruitment')) DEFAULT 'announcement',
		likes INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (club_id) REFERENCES clubs(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS research_papers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		abstract TEXT NOT NULL,
		journal_conference TEXT NOT NULL,
		publication_date DATE,
		pdf_link TEXT,
		citation_count INTEGER DEFAULT 0,
		looking_for_assistants BOOLEAN DEFAULT 0,
		author_id INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (author_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS achievements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		date DATE,
		verified_by_dept BOOLEAN DEFAULT 0,
		image_url TEXT,
		student_id INTEGER NOT NULL,
		claps_count INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (student_id) REFERENCES users(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_news_category ON news(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_news_author ON news(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_news_priority ON news(priority DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_news_created ON news(created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_alumni_batch ON alumni_profiles(batch_year DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_industry_posts_alumni ON industry_posts(alumni_id)`,
	`CREATE INDEX IF NOT EXISTS idx_club_posts_club ON club_posts(club_id)`,
	`CREATE INDEX IF NOT EXISTS idx_clubs_category ON clubs(category)`,
	`CREATE INDEX IF NOT EXISTS idx_research_author ON research_papers(author_id)`,
	`CREATE INDEX IF NOT EXISTS idx_achievements_student ON achievements(student_id)`,
}
