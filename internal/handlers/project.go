package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Zzipix/campushub/internal/db"
	"github.com/Zzipix/campushub/internal/middleware"
	"github.com/Zzipix/campushub/internal/models"
	"github.com/Zzipix/campushub/internal/services"
	"github.com/Zzipix/campushub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const activeProjectsCacheKey = "projects:active"

type ProjectHandler struct{}

func NewProjectHandler() *ProjectHandler {
	return &ProjectHandler{}
}

// loadActiveProjects 一次性加载全部 active 项目（短缓存），
// 查询失败时回退到演示数据集：列表页绝不因后端故障而空白
func loadActiveProjects() (projects []models.Project, demo bool) {
	if cached := utils.GetCache().Get(activeProjectsCacheKey); cached != nil {
		if list, ok := cached.([]models.Project); ok {
			return list, false
		}
	}

	if db.DB == nil {
		return services.DemoProjects(time.Now()), true
	}

	var list []models.Project
	if err := db.DB.
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		log.Printf("[projects] load failed, serving demo data: %v", err)
		return services.DemoProjects(time.Now()), true
	}

	fillCommentCounts(list)

	utils.GetCache().Set(activeProjectsCacheKey, list, 1*time.Minute)
	return list, false
}

// fillCommentCounts 批量填充项目的评论数量
func fillCommentCounts(projects []models.Project) {
	if len(projects) == 0 {
		return
	}

	projectIDs := make([]uint, len(projects))
	for i, p := range projects {
		projectIDs[i] = p.ID
	}

	type countResult struct {
		ProjectID uint
		Count     int
	}
	var results []countResult
	db.DB.Model(&models.Comment{}).
		Select("project_id, COUNT(*) as count").
		Where("project_id IN ?", projectIDs).
		Group("project_id").
		Scan(&results)

	countMap := make(map[uint]int)
	for _, r := range results {
		countMap[r.ProjectID] = r.Count
	}

	for i := range projects {
		projects[i].CommentCount = countMap[projects[i].ID]
	}
}

// List 项目列表：过滤/排序/搜索都是对内存集合的纯函数运算
func (h *ProjectHandler) List(c *gin.Context) {
	query := services.NormalizeListQuery(services.ListQuery{
		Filter:  c.Query("filter"),
		Faculty: c.Query("faculty"),
		Sort:    c.Query("sort"),
		Search:  c.Query("q"),
	})

	session := sessions.Default(c)
	favorites := sessionStrings(session, "favorites")

	allProjects, demoMode := loadActiveProjects()
	projects := services.ApplyFiltersAndSort(allProjects, services.FavoriteSet(favorites), query, time.Now())

	renderData := gin.H{
		"Title":     "Campus projects",
		"Projects":  projects,
		"Query":     query,
		"Faculties": services.Faculties,
		"Favorites": services.FavoriteSet(favorites),
		"DemoMode":  demoMode,
	}

	// 收藏过滤为空时展示专用空状态，而不是通用的"没有项目"
	if len(projects) == 0 {
		if query.Filter == services.FilterFavorites {
			renderData["NoFavorites"] = true
		} else {
			renderData["NoProjects"] = true
		}
	}

	Render(c, http.StatusOK, "project/list.html", renderData)
}

// Detail 项目详情：项目 + 团队 + 预算 + 支持者 + 评论分页
func (h *ProjectHandler) Detail(c *gin.Context) {
	projectID := utils.StringToUint(c.Param("id"))
	if projectID == 0 {
		RenderError(c, http.StatusNotFound, "Project not found")
		return
	}

	var project models.Project
	if err := db.DB.
		Preload("TeamMembers").
		Preload("BudgetItems").
		First(&project, projectID).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Project not found")
		return
	}

	// 一次查询拿到全部评论，分组在服务层做一次。
	// 读失败时展示"评论暂不可用"，而不是伪装成没有评论。
	var comments []models.Comment
	commentsUnavailable := false
	if err := db.DB.Where("project_id = ?", project.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		log.Printf("[projects] comments load failed for %d: %v", project.ID, err)
		commentsUnavailable = true
	}
	thread := services.BuildThread(comments)

	page := utils.StringToInt(c.DefaultQuery("comments", "1"))
	visible, hasMore := services.VisiblePage(len(thread.TopLevel), page)

	var supporters []models.Supporter
	supportersUnavailable := false
	if err := db.DB.Where("project_id = ?", project.ID).
		Order("created_at DESC").
		Limit(50).
		Find(&supporters).Error; err != nil {
		log.Printf("[projects] supporters load failed for %d: %v", project.ID, err)
		supportersUnavailable = true
	}

	recentSupporters := supporters
	if len(recentSupporters) > 3 {
		recentSupporters = recentSupporters[:3]
	}

	session := sessions.Default(c)
	liked := services.FavoriteSet(sessionStrings(session, "liked_comments"))
	favorites := sessionStrings(session, "favorites")

	// 作者始终作为第一位团队成员展示
	team := append([]models.TeamMember{{
		Name:     project.AuthorName,
		Role:     "Project author",
		Faculty:  project.AuthorFaculty,
		Contacts: project.AuthorEmail,
	}}, project.TeamMembers...)

	identity := middleware.CurrentIdentity(c)

	Render(c, http.StatusOK, "project/detail.html", gin.H{
		"Title":                 project.Title,
		"Project":               &project,
		"Description":           utils.RenderDescription(project.Description),
		"Team":                  team,
		"BudgetItems":           project.BudgetItems,
		"Comments":              thread.TopLevel[:visible],
		"RepliesByParent":       thread.RepliesByParent,
		"CommentCount":          len(thread.TopLevel),
		"HasMoreComments":       hasMore,
		"NextCommentsPage":      page + 1,
		"Supporters":            recentSupporters,
		"SupporterCount":        len(supporters),
		"HasMoreSupporters":     len(supporters) > 3,
		"CommentsUnavailable":   commentsUnavailable,
		"SupportersUnavailable": supportersUnavailable,
		"LikedComments":         liked,
		"IsFavorite":            services.HasFavorite(favorites, c.Param("id")),
		"CommentError":          commentErrorMessage(c.Query("cerr")),
		"SupportError":          supportErrorMessage(c.Query("serr")),
		"SupportedAmount":       utils.StringToInt(c.Query("supported")),
		"CommentAuthorDraft":    identity.Name,
	})
}

func commentErrorMessage(code string) string {
	switch code {
	case "author":
		return "Please enter your name"
	case "empty":
		return "Please enter a comment"
	case "short":
		return "The comment must be at least 5 characters long"
	case "failed":
		return "Could not post the comment. Please try again later."
	}
	return ""
}

func supportErrorMessage(code string) string {
	switch code {
	case "min":
		return "Please choose or enter an amount of at least 10"
	case "max":
		return "The amount cannot exceed 1 000 000"
	case "failed":
		return "Something went wrong. Please try again later."
	}
	return ""
}

// ShowCreate 创建表单，身份快照自动填充
func (h *ProjectHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "project/create.html", gin.H{
		"Title":     "Start a project",
		"Faculties": services.Faculties,
	})
}

// Create 提交新项目：本地校验通过后以 moderation 状态入库，
// 团队成员和预算条目作为关联行一并写入
func (h *ProjectHandler) Create(c *gin.Context) {
	input := services.ProjectInput{
		Title:         strings.TrimSpace(c.PostForm("title")),
		Description:   strings.TrimSpace(c.PostForm("description")),
		AuthorName:    strings.TrimSpace(c.PostForm("author_name")),
		AuthorFaculty: c.PostForm("author_faculty"),
		AuthorEmail:   strings.TrimSpace(c.PostForm("author_email")),
		ImageURL:      strings.TrimSpace(c.PostForm("image_url")),
		NeedsTeam:     c.PostForm("needs_team") == "on",
		TargetAmount:  utils.StringToInt(c.PostForm("target_amount")),
	}

	if err := services.ValidateProjectInput(input); err != nil {
		Render(c, http.StatusBadRequest, "project/create.html", gin.H{
			"Title":     "Start a project",
			"Error":     err.Error(),
			"Faculties": services.Faculties,
			"Form":      input,
		})
		return
	}

	deadline, err := utils.ParseDeadline(
		c.PostForm("deadline_date"),
		utils.StringToInt(c.PostForm("deadline_days")),
		time.Now(),
	)
	if err != nil {
		Render(c, http.StatusBadRequest, "project/create.html", gin.H{
			"Title":     "Start a project",
			"Error":     "Could not understand the deadline date",
			"Faculties": services.Faculties,
			"Form":      input,
		})
		return
	}

	project := models.Project{
		Title:           input.Title,
		Description:     input.Description,
		AuthorName:      input.AuthorName,
		AuthorFaculty:   input.AuthorFaculty,
		AuthorEmail:     input.AuthorEmail,
		TargetAmount:    input.TargetAmount,
		CollectedAmount: 0,
		Status:          models.StatusModeration,
		NeedsTeam:       input.NeedsTeam,
		ImageURL:        input.ImageURL,
		PaymentDetails:  strings.TrimSpace(c.PostForm("payment_details")),
		Deadline:        deadline,
		TeamMembers:     collectTeamMembers(c),
		BudgetItems:     collectBudgetItems(c),
	}

	if err := db.DB.Create(&project).Error; err != nil {
		log.Printf("[projects] create failed: %v", err)
		Render(c, http.StatusInternalServerError, "project/create.html", gin.H{
			"Title":     "Start a project",
			"Error":     "Could not submit the project. Please try again later.",
			"Faculties": services.Faculties,
			"Form":      input,
		})
		return
	}

	// 保存身份快照，下次创建/评论时自动填充
	session := sessions.Default(c)
	session.Set("profile_name", input.AuthorName)
	session.Set("profile_email", input.AuthorEmail)
	session.Set("profile_faculty", input.AuthorFaculty)
	session.Save()

	Render(c, http.StatusOK, "project/create.html", gin.H{
		"Title":     "Start a project",
		"Success":   true,
		"ProjectID": project.ID,
	})
}

// collectTeamMembers 收集表单里的团队成员，姓名和角色都为空的行丢弃
func collectTeamMembers(c *gin.Context) []models.TeamMember {
	names := c.PostFormArray("team_name")
	roles := c.PostFormArray("team_role")
	faculties := c.PostFormArray("team_faculty")
	contacts := c.PostFormArray("team_contacts")

	var members []models.TeamMember
	for i := range names {
		name := strings.TrimSpace(names[i])
		role := field(roles, i)
		if name == "" && role == "" {
			continue
		}
		members = append(members, models.TeamMember{
			Name:     name,
			Role:     role,
			Faculty:  field(faculties, i),
			Contacts: field(contacts, i),
		})
	}
	return members
}

// collectBudgetItems 收集预算条目，描述为空或金额非正的行丢弃
func collectBudgetItems(c *gin.Context) []models.BudgetItem {
	descriptions := c.PostFormArray("budget_description")
	amounts := c.PostFormArray("budget_amount")

	var items []models.BudgetItem
	for i := range descriptions {
		description := strings.TrimSpace(descriptions[i])
		amount := utils.StringToInt(field(amounts, i))
		if description == "" || amount <= 0 {
			continue
		}
		items = append(items, models.BudgetItem{
			Description: description,
			Amount:      amount,
		})
	}
	return items
}

func field(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}
