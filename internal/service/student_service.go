package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ssss/backend/internal/dto"
	"ssss/backend/internal/model"
	"ssss/backend/internal/repository"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrEmailTaken      = errors.New("邮箱已被占用")
	ErrImportBadFile   = errors.New("无法解析 Excel 文件")
	ErrImportEmpty     = errors.New("Excel 文件中没有学生数据")
)

// 批量导入的初始登录密码，首次登录后应自行修改
const importInitialPassword = "Student@123"

// StudentService 学生档案业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error)
	Get(ctx context.Context, id string) (*dto.StudentResponse, error)
	GetByUserID(ctx context.Context, userID string) (*dto.StudentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error)
	// ImportFromExcel 从 Excel 批量建档，逐行校验，失败行跳过并记录原因
	ImportFromExcel(ctx context.Context, r io.Reader) (*dto.ImportStudentsResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	idGen  IDGenerator
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{
		repo:   repo,
		idGen:  uuid.NewString,
		logger: logger,
	}
}

// placeholderEmail 未提供邮箱时生成的占位登录邮箱
func (s *studentService) placeholderEmail() string {
	id := strings.ReplaceAll(s.idGen(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("student-%s@ssss.edu", id)
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			s.logger.Error("查询班级失败", zap.Error(err))
			return nil, err
		}
	}

	dob, err := parseDatePtr(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("生成密码哈希失败", zap.Error(err))
		return nil, err
	}

	loginEmail := s.placeholderEmail()
	if req.Email != nil && *req.Email != "" {
		loginEmail = *req.Email
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        loginEmail,
		PasswordHash: string(hash),
		Role:         model.RoleStudent,
	}
	student := &model.Student{
		FullName:    req.FullName,
		RollNumber:  req.RollNumber,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dob,
		Address:     req.Address,
		ClassID:     req.ClassID,
	}

	// 账号与档案同一事务内落库
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.User.Create(ctx, user); err != nil {
			return err
		}
		student.UserID = user.UserID
		return txRepo.Student.Create(ctx, student)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	resp := s.toResponse(student, nil)
	return &resp, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	resp := s.toResponse(student, student.Class)
	return &resp, nil
}

func (s *studentService) GetByUserID(ctx context.Context, userID string) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	resp := s.toResponse(student, student.Class)
	return &resp, nil
}

func (s *studentService) Update(ctx context.Context, id string, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}

	if req.ClassID != nil {
		if _, err := s.repo.Class.GetByID(ctx, *req.ClassID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassNotFound
			}
			s.logger.Error("查询班级失败", zap.Error(err))
			return nil, err
		}
		student.ClassID = req.ClassID
	}
	if req.FullName != nil {
		student.FullName = *req.FullName
	}
	if req.RollNumber != nil {
		student.RollNumber = req.RollNumber
	}
	if req.Email != nil {
		student.Email = req.Email
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		dob, err := parseDatePtr(req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		student.DateOfBirth = dob
	}
	if req.Address != nil {
		student.Address = req.Address
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.Error(err))
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return err
	}

	// 存在学业记录时拒绝删除
	for _, count := range []func(context.Context, string) (int64, error){
		s.repo.Attendance.CountByStudent,
		s.repo.Mark.CountByStudent,
		s.repo.Fee.CountByStudent,
		s.repo.Leave.CountByStudent,
		s.repo.QA.CountQuestionsByStudent,
	} {
		n, err := count(ctx, id)
		if err != nil {
			s.logger.Error("统计关联记录失败", zap.Error(err))
			return err
		}
		if n > 0 {
			return ErrHasDependents
		}
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Student.Delete(ctx, id); err != nil {
			return err
		}
		return txRepo.User.Delete(ctx, student.UserID)
	})
	if err != nil {
		s.logger.Error("删除学生失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *studentService) List(ctx context.Context, req *dto.StudentListRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, req.ClassID, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		result = append(result, s.toResponse(&students[i], students[i].Class))
	}
	return result, total, nil
}

// ═══════════════════════════════════════════════════════════
// ImportFromExcel — Excel 批量建档
// ═══════════════════════════════════════════════════════════
//
// 期望格式：第一个 Sheet，首行表头
//   姓名 | 学号 | 邮箱 | 电话 | 出生日期 (YYYY-MM-DD) | 地址 | 班级名称
// 姓名为必填；班级名称须已存在；失败行跳过并记录原因

func (s *studentService) ImportFromExcel(ctx context.Context, r io.Reader) (*dto.ImportStudentsResponse, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrImportBadFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrImportEmpty
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrImportBadFile
	}
	if len(rows) <= 1 {
		return nil, ErrImportEmpty
	}

	// 预载班级名 → ID 索引
	classes, _, err := s.repo.Class.List(ctx, 0, 1000)
	if err != nil {
		s.logger.Error("查询班级列表失败", zap.Error(err))
		return nil, err
	}
	classByName := make(map[string]string, len(classes))
	for _, c := range classes {
		classByName[strings.ToLower(c.Name)] = c.ClassID
	}

	result := &dto.ImportStudentsResponse{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 表头占第 1 行

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		fullName := cell(0)
		if fullName == "" {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "姓名为空"})
			continue
		}

		req := &dto.CreateStudentRequest{
			FullName: fullName,
			Password: importInitialPassword,
		}
		if v := cell(1); v != "" {
			req.RollNumber = &v
		}
		if v := cell(2); v != "" {
			req.Email = &v
		}
		if v := cell(3); v != "" {
			req.Phone = &v
		}
		if v := cell(4); v != "" {
			req.DateOfBirth = &v
		}
		if v := cell(5); v != "" {
			req.Address = &v
		}
		if v := cell(6); v != "" {
			classID, ok := classByName[strings.ToLower(v)]
			if !ok {
				result.Failed++
				result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: fmt.Sprintf("班级不存在: %s", v)})
				continue
			}
			req.ClassID = &classID
		}

		created, err := s.Create(ctx, req)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: err.Error()})
			continue
		}
		result.Imported++
		result.Students = append(result.Students, *created)
	}

	if result.Imported == 0 && result.Failed == 0 {
		return nil, ErrImportEmpty
	}
	return result, nil
}

func (s *studentService) toResponse(student *model.Student, class *model.Class) dto.StudentResponse {
	resp := dto.StudentResponse{
		StudentID:   student.StudentID,
		UserID:      student.UserID,
		FullName:    student.FullName,
		RollNumber:  student.RollNumber,
		Email:       student.Email,
		Phone:       student.Phone,
		DateOfBirth: formatDatePtr(student.DateOfBirth),
		Address:     student.Address,
		ClassID:     student.ClassID,
		CreatedAt:   formatTime(student.CreatedAt),
	}
	if class != nil {
		resp.ClassName = &class.Name
	}
	return resp
}
