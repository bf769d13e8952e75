// Package config provides environment and file based configuration:
// the evaluation roster, JWT settings and password hashing.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/edivaldojuniordev/matrizcognis/internal/types"
)

// Roster is the fixed evaluation setup: who votes, what is voted on, and
// which member ids form the official cohort. It is configuration, not
// runtime state; votes are the only data that changes during a session.
type Roster struct {
	Criteria    []string         `json:"criteria"`
	CoreTeamIDs []string         `json:"coreTeamIds"`
	Members     []types.Member   `json:"members"`
	Proposals   []types.Proposal `json:"proposals"`
	Teams       []types.Team     `json:"teams"`
}

// LoadRoster reads a roster from a JSON file. An empty path returns the
// built-in default roster.
func LoadRoster(path string) (*Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file %s: %w", path, err)
	}
	var r Roster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks structural invariants the aggregation core relies on.
// A proposal may carry fewer descriptions than there are criteria (the
// missing ones render as "no description"); only more is an error.
func (r *Roster) Validate() error {
	if len(r.Criteria) == 0 {
		return fmt.Errorf("roster error: at least one criterion is required")
	}
	seen := make(map[string]bool, len(r.Members))
	for _, m := range r.Members {
		if m.ID == "" {
			return fmt.Errorf("roster error: member with empty id (name %q)", m.Name)
		}
		if seen[m.ID] {
			return fmt.Errorf("roster error: duplicate member id %q", m.ID)
		}
		seen[m.ID] = true
	}
	for _, id := range r.CoreTeamIDs {
		if !seen[id] {
			return fmt.Errorf("roster error: core team id %q has no member entry", id)
		}
	}
	for _, p := range r.Proposals {
		if p.ID == "" {
			return fmt.Errorf("roster error: proposal with empty id (name %q)", p.Name)
		}
		if len(p.Descriptions) > len(r.Criteria) {
			return fmt.Errorf("roster error: proposal %q has %d descriptions for %d criteria", p.ID, len(p.Descriptions), len(r.Criteria))
		}
	}
	return nil
}

// OfficialMembers returns the members on the core team allow-list, in
// roster order.
func (r *Roster) OfficialMembers() []types.Member {
	official := make([]types.Member, 0, len(r.CoreTeamIDs))
	core := make(map[string]bool, len(r.CoreTeamIDs))
	for _, id := range r.CoreTeamIDs {
		core[id] = true
	}
	for _, m := range r.Members {
		if core[m.ID] {
			official = append(official, m)
		}
	}
	return official
}

// DefaultRoster returns the reference configuration: four criteria, six
// official members plus one visitor profile, and four proposals.
func DefaultRoster() *Roster {
	return &Roster{
		Criteria:    append([]string(nil), types.Criteria...),
		CoreTeamIDs: []string{"edivaldo", "cynthia", "naiara", "emanuel", "fabiano", "gabriel"},
		Members: []types.Member{
			{ID: "emanuel", Name: "Emanuel Heráclio", Role: "Product Owner / Analista de Negócios", Bio: "Definidor da visão do produto e requisitos."},
			{ID: "cynthia", Name: "Cynthia Borelli", Role: "Scrum Master / Gerente de Projeto", Bio: "Guardiã da metodologia ágil."},
			{ID: "naiara", Name: "Naiara Oliveira", Role: "Designer UI/UX", Bio: "Responsável pela experiência do usuário."},
			{ID: "fabiano", Name: "Fabiano Santana", Role: "Arquiteto de Software / Back-end", Bio: "Especialista em infraestrutura e dados."},
			{ID: "edivaldo", Name: "Edivaldo Junior", Role: "Desenvolvedor Front-end", Bio: "Liderança técnica e implementação de interface."},
			{ID: "gabriel", Name: "Gabriel Araujo", Role: "QA Tester / DevOps", Bio: "Garantia de qualidade e automação."},
			{ID: "lucas", Name: "Lucas (Visitante)", Role: "Stakeholder", Bio: "Avaliador convidado."},
		},
		Proposals: []types.Proposal{
			{
				ID:   "ewaste",
				Name: "Proposta 1: E-Waste Tracker",
				Descriptions: []string{
					"Análise: Problema socialmente relevante, mas os stakeholders (pontos de coleta) estão fora do nosso alcance direto.",
					"Análise: O MVP (mapa com pontos de coleta) depende da obtenção de dados externos que talvez não existam. Risco de viabilidade.",
					"Análise: É \"fatiável\", mas as dependências externas podem complicar os Sprints.",
					"Análise: Apresentação boa, com potencial para mapas e gráficos.",
				},
			},
			{
				ID:   "profilink",
				Name: "Proposta 2: Profi Link",
				Descriptions: []string{
					"Análise: Problema real, mas de altíssima complexidade (marketplace). A justificativa para um MVP de curso é mais fraca.",
					"Análise: O MVP é muito difícil de definir. Um catálogo sem profissionais ou sem usuários não tem valor. O risco de execução é altíssimo.",
					"Análise: Dificilmente \"fatiável\" de uma forma que entregue valor a cada Sprint.",
					"Análise: A apresentação pode ser confusa se o MVP não for bem-sucedido.",
				},
			},
			{
				ID:   "portfolio_aws",
				Name: "Proposta 3: Portfólio na Nuvem (AWS)",
				Descriptions: []string{
					"Problema: Devs iniciantes criam códigos de alto valor, mas têm 'projetos de gaveta' por barreiras de hospedagem. Isso gera portfólios invisíveis para recrutadores.",
					"MVP Claro: Upload de .zip -> Lambda orquestra deploy -> S3 Website Público. O usuário recebe o link em < 1 min.",
					"Planejamento Ágil: Sprint 1 (Infra S3/Lambda), Sprint 2 (Frontend/API Gateway), Sprint 3 (Cognito/Polimento).",
					"Apresentação: Demonstração técnica robusta de AWS (S3, Lambda, DynamoDB) resolvendo uma dor real de empregabilidade.",
				},
			},
			{
				ID:   "motos_legacy",
				Name: "Proposta 4: Gestão de Motos (Estudo)",
				Descriptions: []string{
					"Análise: Problema operacional válido, mas o foco é CRUD simples, com menor complexidade de Cloud Architecture.",
					"Análise: MVP viável (aluguel/devolução), mas menos inovador para um portfólio de Engenharia de Nuvem.",
					"Análise: Sprints bem definidas, mas o desafio técnico é menor comparado à orquestração serverless.",
					"Análise: Apresentação funcional, mas com menor 'fator uau' para demonstrar domínio de AWS.",
				},
			},
		},
		Teams: defaultTeams(),
	}
}

func defaultTeams() []types.Team {
	teams := make([]types.Team, 0, 6)
	for n := 1; n <= 6; n++ {
		team := types.Team{
			ID:         fmt.Sprintf("team_%d", n),
			TeamNumber: n,
			Name:       fmt.Sprintf("Equipe Cloud %d", n),
			Members:    []string{},
			Project:    types.TeamProject{Name: "Aguardando Definição", Description: "Nenhum projeto registrado."},
		}
		if n == 3 {
			team.Members = []string{"Edivaldo Junior", "Cynthia Borelli", "Naiara Oliveira", "Emanuel Heráclio", "Fabiano Santana", "Gabriel Araujo"}
			team.Project = types.TeamProject{
				Name:        "Portfólio na Nuvem",
				Description: "Plataforma de publicação automatizada de sites estáticos utilizando arquitetura Serverless na AWS (S3, Lambda, API Gateway).",
			}
		}
		teams = append(teams, team)
	}
	return teams
}
