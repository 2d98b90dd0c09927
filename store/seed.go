package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/gcbaptista/campus-buzz/internal/auth"
	"github.com/gcbaptista/campus-buzz/model"
)

type seedUser struct {
	email, password, name string
	role                  model.Role
}

var (
	seedCategories = []model.Category{
		{Name: "Academics", Slug: "academics", Description: "Academic notices, exam schedules, and course updates", Icon: "📚", Color: "#8b5cf6"},
		{Name: "Events", Slug: "events", Description: "Campus events, workshops, and seminars", Icon: "🎉", Color: "#ec4899"},
		{Name: "Announcements", Slug: "announcements", Description: "Official university announcements", Icon: "📢", Color: "#f59e0b"},
		{Name: "Opportunities", Slug: "opportunities", Description: "Internships, jobs, and scholarships", Icon: "💼", Color: "#10b981"},
		{Name: "Holidays", Slug: "holidays", Description: "Holiday schedules and university closures", Icon: "🏖️", Color: "#06b6d4"},
	}

	seedUsers = []seedUser{
		{"admin@upes.ac.in", "admin123", "Admin User", model.RoleAdmin},
		{"faculty@upes.ac.in", "faculty123", "Dr. Sharma", model.RoleFaculty},
		{"student@upes.ac.in", "student123", "Rahul Kumar", model.RoleStudent},
	}
)

// seedNews rows reference categories by slug and authors by role.
var seedNews = []struct {
	title, slug, description, content, category string
	priority                                    int
	author                                      model.Role
	pinned                                      bool
	image                                       string
}{
	{
		"End Semester Examination Schedule Released", "end-semester-exam-schedule-2024",
		"The examination department has released the schedule for end semester examinations starting from March 15, 2024.",
		"The Controller of Examinations office has officially released the End Semester Examination schedule for the academic session 2023-24. Students are advised to check their respective examination dates and prepare accordingly.\n\n**Key Dates:**\n- Exams begin: March 15, 2024\n- Exams end: April 5, 2024\n- Result declaration: April 20, 2024\n\nStudents must carry their admit cards to the examination hall.",
		"academics", 5, model.RoleAdmin, true, "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=800",
	},
	{
		"TechFest 2024 - Innovation Summit", "techfest-2024-innovation-summit",
		"Join us for the biggest tech event of the year featuring workshops, hackathons, and guest lectures from industry experts.",
		"UPES is proud to announce TechFest 2024 - our annual technology festival that brings together the brightest minds in tech.\n\n**Event Highlights:**\n- 24-hour Hackathon with prizes worth ₹5 Lakhs\n- Workshops on AI, Blockchain, and Cloud Computing\n- Keynote by Google and Microsoft engineers\n- Startup pitch competition\n\n**Date:** February 20-22, 2024\n**Venue:** Main Auditorium & Tech Labs\n\nRegistration is now open on the student portal.",
		"events", 4, model.RoleFaculty, true, "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800",
	},
	{
		"New Library Timings Effective Immediately", "new-library-timings-2024",
		"The central library will now operate with extended hours to facilitate student preparation for upcoming examinations.",
		"To support students during the examination period, the Central Library will now operate with extended hours.\n\n**New Timings:**\n- Monday to Friday: 7:00 AM - 11:00 PM\n- Saturday: 8:00 AM - 8:00 PM\n- Sunday: 9:00 AM - 6:00 PM\n\nThese timings are effective from February 1, 2024, until further notice.",
		"announcements", 3, model.RoleAdmin, false, "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=800",
	},
	{
		"Google Summer Internship Program 2024", "google-summer-internship-2024",
		"Google is offering summer internships for 3rd and 4th year students. Apply through the placement cell by February 28.",
		"The Training and Placement Cell is pleased to announce that Google is recruiting summer interns from UPES.\n\n**Eligibility:**\n- 3rd and 4th year B.Tech students\n- CGPA above 7.5\n- Strong programming skills in Python/Java/C++\n\n**Stipend:** ₹80,000 per month\n**Duration:** 8-12 weeks\n**Location:** Bangalore/Hyderabad\n\n**Application Deadline:** February 28, 2024\n\nInterested students should register on the placement portal and upload their updated resume.",
		"opportunities", 5, model.RoleFaculty, true, "https://images.unsplash.com/photo-1573804633927-bfcbcd909acd?w=800",
	},
	{
		"Holi Festival Holiday - March 25, 2024", "holi-holiday-2024",
		"The university will remain closed on March 25, 2024 on account of Holi festival.",
		"This is to inform all students, faculty, and staff that the university will remain closed on **March 25, 2024** (Monday) on account of Holi festival.\n\nClasses will resume on March 26, 2024.\n\nWishing everyone a colorful and joyful Holi! 🎨",
		"holidays", 2, model.RoleAdmin, false, "https://images.unsplash.com/photo-1576096899289-8858b5fca41c?w=800",
	},
	{
		"Workshop on Machine Learning Fundamentals", "ml-workshop-fundamentals",
		"A hands-on workshop covering the basics of Machine Learning with Python. Open to all students.",
		"The Department of Computer Science is organizing a 3-day workshop on Machine Learning Fundamentals.\n\n**Topics Covered:**\n- Introduction to ML and AI\n- Python for Data Science\n- Supervised Learning Algorithms\n- Neural Networks basics\n- Hands-on projects\n\n**Date:** March 1-3, 2024\n**Time:** 10:00 AM - 4:00 PM\n**Venue:** Computer Lab 3\n**Registration Fee:** Free for UPES students\n\nLimited seats available. Register on the student portal.",
		"events", 3, model.RoleFaculty, false, "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?w=800",
	},
}

var seedAlumni = []model.AlumniProfile{
	{
		Name: "Priya Sharma", BatchYear: 2021, Branch: "CSE", Company: "Google", Role: "Software Engineer II",
		AvatarURL:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=200",
		Bio:          "Passionate about distributed systems and ML. Love mentoring juniors!",
		CareerUpdate: "Just got promoted to SWE II at Google! Worked on Search infra. Happy to guide anyone preparing for FAANG interviews 🚀",
		LinkedInURL:  "https://linkedin.com", Email: "priya@alumni.upes.ac.in", IsMentor: true,
	},
	{
		Name: "Arjun Mehta", BatchYear: 2020, Branch: "CSE", Company: "Microsoft", Role: "Data Scientist",
		AvatarURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=200",
		Bio:          "Data Science @ Microsoft Azure. Ex-Intern at Amazon. IIT Bombay MTech.",
		CareerUpdate: "Launched a new Azure ML feature that serves 10M+ users. AMA about Data Science careers and MS applications!",
		LinkedInURL:  "https://linkedin.com", Email: "arjun@alumni.upes.ac.in", IsMentor: true,
	},
	{
		Name: "Neha Gupta", BatchYear: 2022, Branch: "CSE", Company: "Flipkart", Role: "ML Engineer",
		AvatarURL:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=200",
		Bio:          "ML Engineer working on recommendation systems. GATE 2022 AIR 42.",
		CareerUpdate: "Our recommendation model just improved CTR by 18%! If you want to break into ML, I share weekly tips on LinkedIn 💡",
		LinkedInURL:  "https://linkedin.com", Email: "neha@alumni.upes.ac.in", IsMentor: true,
	},
	{
		Name: "Rohit Verma", BatchYear: 2019, Branch: "CSE", Company: "Startup - ZenPay", Role: "Co-Founder & CTO",
		AvatarURL:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=200",
		Bio:          "Founded ZenPay after 3 years at Razorpay. Building the future of fintech.",
		CareerUpdate: "ZenPay just closed our Series A of $4M! Looking for passionate engineers – DM me if interested 🎉",
		LinkedInURL:  "https://linkedin.com", Email: "rohit@alumni.upes.ac.in", IsMentor: true,
	},
}

// seedIndustryPosts are keyed by the index of the author in seedAlumni.
var seedIndustryPosts = []struct {
	alumni               int
	title, content, tags string
}{
	{0, "How FAANG conducts System Design Interviews in 2025", "After 3 rounds at Google and 2 at Meta, here are the patterns I noticed. First, always clarify requirements. Second, start with a high-level design before diving deep. Third, discuss trade-offs openly – they love that. The key shift in 2025 is AI-augmented systems – expect questions on how your design handles ML model serving at scale.", "CSE"},
	{1, "Getting into Data Science without a Masters – my journey", "Everyone told me I needed an MTech to land a DS role at a top company. I proved them wrong. Here is what actually matters: Kaggle competitions (I got to Expert level), side projects with real business impact, and a solid understanding of statistics. Microsoft hired me straight out of UPES because of my Kaggle ranking. Start today!", "Data Science"},
	{2, "Transformer models are changing recommendation systems", "At Flipkart, we replaced our traditional collaborative filtering with a BERT4Rec-style transformer. The results? 18% CTR improvement and 12% higher GMV on the recommendations carousel. The key insight: sequential user behavior modeled as a language task.", "Machine Learning"},
	{3, "What I wish I knew before founding a startup", "After 3 years at Razorpay and 2 years building ZenPay, here are my honest lessons: 1) Find a problem you personally experienced. 2) Talk to 100 potential users before writing code. 3) Your first 10 engineers define your culture forever. 4) Fundraising is a full-time job – plan for 6 months. 5) Take care of your mental health.", "CSE"},
}

var seedQuestions = []model.Question{
	{StudentName: "Amit Kumar", Question: "How should I prepare for Google SWE interviews in 3 months?", CompanyContext: "Google"},
	{StudentName: "Sakshi Jain", Question: "What Python libraries are most important for a Data Science internship at a startup?", CompanyContext: "General DS"},
	{StudentName: "Dev Patel", Question: "Is doing a MTech from IIT worth it for a career in ML Research?", CompanyContext: "ML Research"},
}

const seedAnswer = "Focus on Leetcode medium problems, especially graphs and dynamic programming. Do 2–3 mock interviews per week using Pramp or with friends. Study system design from the Designing Data-Intensive Applications book. Month 1: DSA. Month 2: System Design. Month 3: Mock interviews + behavioral prep."

var seedClubs = []model.Club{
	{Name: "CodeCraft", Slug: "codecraft", Category: "Tech", Description: "Competitive programming and open-source development club. We host weekly coding contests and hackathons.", LogoURL: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?w=200", CoverURL: "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=800", FoundedYear: 2018, MemberCount: 120, ContactEmail: "codecraft@upes.ac.in"},
	{Name: "AI & Robotics Club", Slug: "ai-robotics", Category: "Tech", Description: "Exploring artificial intelligence, machine learning and robotics through hands-on projects and research.", LogoURL: "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=200", CoverURL: "https://images.unsplash.com/photo-1518314916381-77a37c2a49ae?w=800", FoundedYear: 2019, MemberCount: 95, ContactEmail: "ai-robotics@upes.ac.in"},
	{Name: "Spectrum — The Dramatics Club", Slug: "spectrum-dramatics", Category: "Cultural", Description: "Celebrating art, theatre and fine arts. We perform plays, mono-acts and street performances across festivals.", LogoURL: "https://images.unsplash.com/photo-1503095396549-807759245b35?w=200", CoverURL: "https://images.unsplash.com/photo-1507676184212-d03ab07a01bf?w=800", FoundedYear: 2016, MemberCount: 75, ContactEmail: "spectrum@upes.ac.in"},
	{Name: "Quill — The Literary Club", Slug: "quill-literary", Category: "Literary", Description: "Creative writing, poetry, debates and book reviews. We publish a semesterly literary magazine.", LogoURL: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=200", CoverURL: "https://images.unsplash.com/photo-1524995997946-a1c2e315a42f?w=800", FoundedYear: 2017, MemberCount: 55, ContactEmail: "quill@upes.ac.in"},
	{Name: "Phoenix Sports Club", Slug: "phoenix-sports", Category: "Sports", Description: "Multi-sport club covering cricket, football, basketball and athletics. We represent UPES in inter-university tournaments.", LogoURL: "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=200", CoverURL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800", FoundedYear: 2015, MemberCount: 200, ContactEmail: "phoenix@upes.ac.in"},
	{Name: "NSS — National Service Scheme", Slug: "nss", Category: "Social", Description: "Community service, social awareness campaigns and rural outreach programs. Serving society through student power.", LogoURL: "https://images.unsplash.com/photo-1593113616828-6f22bca04804?w=200", CoverURL: "https://images.unsplash.com/photo-1469571486292-0ba58a3f068b?w=800", FoundedYear: 2014, MemberCount: 300, ContactEmail: "nss@upes.ac.in"},
}

// seedClubPosts are keyed by club slug.
var seedClubPosts = []struct {
	club, title, content string
	postType             model.ClubPostType
}{
	{"codecraft", "Codewar 2025 — Results & Winners 🏆", "Our annual 6-hour coding marathon concluded with 80+ participants. Problems covered graphs, DP and segment trees. Certificates dispatched via email. See you at Codewar 2026!", model.ClubPostAchievement},
	{"codecraft", "Open Source Contribution Drive — Join Us!", "We are organising a month-long open source contribution drive. Pick any good-first-issue on GitHub, make a PR, and get featured in our Hall of Contributors. Meeting every Saturday 3PM, Lab 204.", model.ClubPostRecruitment},
	{"ai-robotics", "Line-Following Robot Workshop", "We built and raced 12 autonomous line-following robots last weekend! The workshop covered Arduino, H-bridge motor drivers and PID control. Next session: Computer Vision with OpenCV — March 8th.", model.ClubPostEvent},
	{"spectrum-dramatics", "Annual Play: \"The Waiting Room\" — March 15", "We present our annual theatrical production \"The Waiting Room\". Venue: Main Auditorium. Doors open at 6:30 PM. Entry FREE for all UPES students.", model.ClubPostEvent},
	{"quill-literary", "Inkwell Vol. 4 — Submit Your Work!", "Our semesterly literary magazine \"Inkwell\" is accepting submissions! Poetry, short stories, essays and satire. Deadline: March 10.", model.ClubPostAnnouncement},
	{"phoenix-sports", "Inter-University Cricket — We Are Champions!", "UPES XI clinched the Uttarakhand Inter-University Cricket Championship 2025, defeating IIT Roorkee in a nail-biting final. 🏏🏆", model.ClubPostAchievement},
	{"nss", "Blood Donation Camp — February 28", "NSS UPES organises a blood donation camp in collaboration with Himalayan Hospital. Date: Feb 28, 10AM–3PM, Admin Block. Every donation saves 3 lives.", model.ClubPostEvent},
}

var seedPapers = []struct {
	paper  model.ResearchPaper
	author model.Role
}{
	{model.ResearchPaper{Title: "AI-Driven Traffic Management System for Smart Cities", Abstract: "This paper proposes a novel approach to urban traffic control using deep reinforcement learning. By analyzing real-time camera feeds, the system optimizes traffic light timings to reduce congestion by 22%.", JournalConference: "IEEE International Conference on Smart Cities 2024", PublicationDate: "2024-05-12", PDFLink: "#", CitationCount: 14, LookingForAssistants: true}, model.RoleFaculty},
	{model.ResearchPaper{Title: "Quantum Cryptography: Securing the Future Internet", Abstract: "An overview of post-quantum cryptographic algorithms and their implementation challenges in existing network infrastructure. We demonstrate a hybrid key exchange protocol resistant to quantum attacks.", JournalConference: "Journal of Network Security, Vol 12", PublicationDate: "2023-11-20", PDFLink: "#", CitationCount: 32}, model.RoleFaculty},
	{model.ResearchPaper{Title: "Sustainable Energy Harvesting from Piezoelectric Materials", Abstract: "Investigating the efficiency of new polymer composites in harvesting energy from footfall traffic in university corridors. Preliminary results show a 15% increase in power output compared to traditional ceramics.", JournalConference: "Renewable Energy Summit 2024", PublicationDate: "2024-02-15", PDFLink: "#", CitationCount: 5, LookingForAssistants: true}, model.RoleAdmin},
}

var seedAchievements = []model.Achievement{
	{Title: "1st Place at Smart India Hackathon 2024", Description: "Developed \"AgroTech,\" an AI-powered app for early plant disease detection. Competed against 500+ teams nationwide.", Date: "2024-08-15", VerifiedByDept: true, ImageURL: "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=500", ClapsCount: 45},
	{Title: "Google Summer of Code (GSoC) Mentor", Description: "Selected as a mentor for the TensorFlow organization. Guided 2 students in implementing new optimization algorithms.", Date: "2024-06-01", VerifiedByDept: true, ImageURL: "https://images.unsplash.com/photo-1522071820081-009f0129c71c?w=500", ClapsCount: 32},
	{Title: "Best Research Paper Award", Description: "Awarded \"Best Paper\" at the National Conference on Student Research for work on \"Blockchain in Supply Chain\".", Date: "2023-12-10", ImageURL: "https://images.unsplash.com/photo-1590650516494-0c8e4a4dd67e?w=500", ClapsCount: 18},
}

// seed fills empty tables with the default data. Categories and accounts are
// matched by their unique keys, so existing rows are never overwritten.
func (s *SQLiteStore) seed(ctx context.Context, hasher *auth.PasswordHasher) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range seedCategories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO categories (name, slug, description, icon, color) VALUES (?, ?, ?, ?, ?)`,
			c.Name, c.Slug, c.Description, c.Icon, c.Color); err != nil {
			return fmt.Errorf("category %s: %w", c.Slug, err)
		}
	}

	for _, u := range seedUsers {
		var taken int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE email = ?`, u.email).Scan(&taken); err != nil {
			return err
		}
		if taken > 0 {
			continue
		}
		hash, err := hasher.Hash(u.password)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (email, password, name, role) VALUES (?, ?, ?, ?)`,
			u.email, hash, u.name, string(u.role)); err != nil {
			return fmt.Errorf("user %s: %w", u.email, err)
		}
	}

	steps := []struct {
		table string
		fill  func(context.Context, *sql.Tx) error
	}{
		{"news", seedNewsRows},
		{"alumni_profiles", seedAlumniRows},
		{"clubs", seedClubRows},
		{"research_papers", seedPaperRows},
		{"achievements", seedAchievementRows},
	}
	for _, step := range steps {
		var count int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+step.table).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := step.fill(ctx, tx); err != nil {
			return fmt.Errorf("seeding %s: %w", step.table, err)
		}
		s.logger.Debug("Seeded sample data", zap.String("table", step.table))
	}

	return tx.Commit()
}

func idFor(ctx context.Context, tx *sql.Tx, query string, arg any) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, query, arg).Scan(&id); err != nil {
		return 0, fmt.Errorf("lookup %v: %w", arg, err)
	}
	return id, nil
}

func seedNewsRows(ctx context.Context, tx *sql.Tx) error {
	for _, n := range seedNews {
		categoryID, err := idFor(ctx, tx, `SELECT id FROM categories WHERE slug = ?`, n.category)
		if err != nil {
			return err
		}
		authorID, err := idFor(ctx, tx, `SELECT id FROM users WHERE role = ? ORDER BY id LIMIT 1`, string(n.author))
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO news (title, slug, description, content, category_id, priority, author_id, is_pinned, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			n.title, n.slug, n.description, n.content, categoryID, n.priority, authorID, boolToInt(n.pinned), n.image); err != nil {
			return err
		}
	}
	return nil
}

func seedAlumniRows(ctx context.Context, tx *sql.Tx) error {
	ids := make([]int64, len(seedAlumni))
	for i, a := range seedAlumni {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO alumni_profiles (name, batch_year, branch, company, role, avatar_url, bio, career_update, linkedin_url, email, is_mentor)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.Name, a.BatchYear, a.Branch, a.Company, a.Role, a.AvatarURL, a.Bio, a.CareerUpdate, a.LinkedInURL, a.Email, boolToInt(a.IsMentor))
		if err != nil {
			return err
		}
		if ids[i], err = res.LastInsertId(); err != nil {
			return err
		}
	}

	for _, p := range seedIndustryPosts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO industry_posts (alumni_id, title, content, tags) VALUES (?, ?, ?, ?)`,
			ids[p.alumni], p.title, p.content, p.tags); err != nil {
			return err
		}
	}

	var firstQuestion int64
	for i, q := range seedQuestions {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO qa_questions (student_name, question, company_context) VALUES (?, ?, ?)`,
			q.StudentName, q.Question, q.CompanyContext)
		if err != nil {
			return err
		}
		if i == 0 {
			if firstQuestion, err = res.LastInsertId(); err != nil {
				return err
			}
		}
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO qa_answers (question_id, alumni_id, answer) VALUES (?, ?, ?)`, firstQuestion, ids[0], seedAnswer)
	return err
}

func seedClubRows(ctx context.Context, tx *sql.Tx) error {
	for _, c := range seedClubs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO clubs (name, slug, category, description, logo_url, cover_url, founded_year, member_count, contact_email)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.Name, c.Slug, c.Category, c.Description, c.LogoURL, c.CoverURL, c.FoundedYear, c.MemberCount, c.ContactEmail); err != nil {
			return err
		}
	}

	for _, p := range seedClubPosts {
		clubID, err := idFor(ctx, tx, `SELECT id FROM clubs WHERE slug = ?`, p.club)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO club_posts (club_id, title, content, post_type) VALUES (?, ?, ?, ?)`,
			clubID, p.title, p.content, string(p.postType)); err != nil {
			return err
		}
	}
	return nil
}

func seedPaperRows(ctx context.Context, tx *sql.Tx) error {
	for _, sp := range seedPapers {
		authorID, err := idFor(ctx, tx, `SELECT id FROM users WHERE role = ? ORDER BY id LIMIT 1`, string(sp.author))
		if err != nil {
			return err
		}
		p := sp.paper
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO research_papers (title, abstract, journal_conference, publication_date, pdf_link, citation_count, looking_for_assistants, author_id)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Title, p.Abstract, p.JournalConference, p.PublicationDate, p.PDFLink, p.CitationCount,
			boolToInt(p.LookingForAssistants), authorID); err != nil {
			return err
		}
	}
	return nil
}

func seedAchievementRows(ctx context.Context, tx *sql.Tx) error {
	studentID, err := idFor(ctx, tx, `SELECT id FROM users WHERE role = ? ORDER BY id LIMIT 1`, string(model.RoleStudent))
	if err != nil {
		return err
	}
	for _, a := range seedAchievements {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO achievements (title, description, date, verified_by_dept, image_url, student_id, claps_count)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			a.Title, a.Description, a.Date, boolToInt(a.VerifiedByDept), a.ImageURL, studentID, a.ClapsCount); err != nil {
			return err
		}
	}
	return nil
}
