package algorithm

import (
	"math/rand"
	"sort"
)

// individual 种群中的一个个体：站点下标的一个排列
type individual struct {
	perm    []int
	fitness float64
}

// geneticSearch 单次遗传搜索
// 在站点排列空间上搜索总距离最短的访问顺序
type geneticSearch struct {
	depot  Location
	points []Location
	cfg    OptimizerConfig
	rng    *rand.Rand

	population []individual
	best       individual
}

func newGeneticSearch(depot Location, points []Location, cfg OptimizerConfig, rng *rand.Rand) *geneticSearch {
	return &geneticSearch{
		depot:  depot,
		points: points,
		cfg:    cfg,
		rng:    rng,
	}
}

// permDistanceKm 计算某个排列对应路线的总距离
func (gs *geneticSearch) permDistanceKm(perm []int) float64 {
	total := 0.0
	current := gs.depot
	for _, idx := range perm {
		total += HaversineKm(current, gs.points[idx])
		current = gs.points[idx]
	}
	total += HaversineKm(current, gs.depot)
	return total
}

// evaluate 计算适应度：距离越短适应度越高（严格单调）
func (gs *geneticSearch) evaluate(perm []int) float64 {
	distance := gs.permDistanceKm(perm)
	duration := EstimateTravelHours(distance, gs.cfg.AvgSpeedKmh)
	return 1.0 / (1.0 + distance + duration*10)
}

// nearestNeighborPerm 从仓库出发的贪心最近邻排列，用作种群的启发式种子
func (gs *geneticSearch) nearestNeighborPerm() []int {
	n := len(gs.points)
	perm := make([]int, 0, n)
	visited := make([]bool, n)
	current := gs.depot

	for len(perm) < n {
		bestIdx := -1
		bestDist := 0.0
		for i := 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d := HaversineKm(current, gs.points[i])
			if bestIdx < 0 || d < bestDist {
				bestIdx = i
				bestDist = d
			}
		}
		visited[bestIdx] = true
		perm = append(perm, bestIdx)
		current = gs.points[bestIdx]
	}

	return perm
}

// initPopulation 初始化种群：一个最近邻种子 + 随机排列
func (gs *geneticSearch) initPopulation() {
	n := len(gs.points)
	gs.population = make([]individual, 0, gs.cfg.PopulationSize)

	seed := gs.nearestNeighborPerm()
	gs.population = append(gs.population, individual{perm: seed, fitness: gs.evaluate(seed)})

	for len(gs.population) < gs.cfg.PopulationSize {
		perm := gs.rng.Perm(n)
		gs.population = append(gs.population, individual{perm: perm, fitness: gs.evaluate(perm)})
	}

	gs.sortPopulation()
	gs.best = cloneIndividual(gs.population[0])
}

func (gs *geneticSearch) sortPopulation() {
	sort.Slice(gs.population, func(i, j int) bool {
		return gs.population[i].fitness > gs.population[j].fitness
	})
}

func cloneIndividual(ind individual) individual {
	perm := make([]int, len(ind.perm))
	copy(perm, ind.perm)
	return individual{perm: perm, fitness: ind.fitness}
}

// selectParent 锦标赛选择（规模3）
func (gs *geneticSearch) selectParent() individual {
	best := gs.population[gs.rng.Intn(len(gs.population))]
	for i := 0; i < 2; i++ {
		candidate := gs.population[gs.rng.Intn(len(gs.population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return best
}

// orderCrossover OX交叉：子代继承父代A的一段连续基因，
// 其余位置按父代B中的相对顺序填充，保证排列不重不漏
func orderCrossover(parentA, parentB []int, rng *rand.Rand) []int {
	n := len(parentA)
	child := make([]int, n)
	for i := range child {
		child[i] = -1
	}

	start := rng.Intn(n)
	end := rng.Intn(n)
	if start > end {
		start, end = end, start
	}

	inSlice := make(map[int]bool, end-start+1)
	for i := start; i <= end; i++ {
		child[i] = parentA[i]
		inSlice[parentA[i]] = true
	}

	pos := (end + 1) % n
	for _, gene := range parentB {
		if inSlice[gene] {
			continue
		}
		for child[pos] != -1 {
			pos = (pos + 1) % n
		}
		child[pos] = gene
	}

	return child
}

// mutate 交换变异：随机交换两个位置
func (gs *geneticSearch) mutate(perm []int) {
	if gs.rng.Float64() >= gs.cfg.MutationRate {
		return
	}
	i := gs.rng.Intn(len(perm))
	j := gs.rng.Intn(len(perm))
	perm[i], perm[j] = perm[j], perm[i]
}

// run 执行遗传搜索，返回找到的最优个体
// 代数达到上限或连续 Patience 代无改进即停止；
// 无论是否收敛都返回目前最优（搜索失败不是错误）
func (gs *geneticSearch) run() individual {
	n := len(gs.points)
	if n == 0 {
		return individual{}
	}
	if n == 1 {
		perm := []int{0}
		return individual{perm: perm, fitness: gs.evaluate(perm)}
	}

	gs.initPopulation()

	stale := 0
	for gen := 0; gen < gs.cfg.MaxGenerations && stale < gs.cfg.Patience; gen++ {
		next := make([]individual, 0, gs.cfg.PopulationSize)

		// 精英保留
		eliteCount := gs.cfg.EliteCount
		if eliteCount > len(gs.population) {
			eliteCount = len(gs.population)
		}
		for i := 0; i < eliteCount; i++ {
			next = append(next, cloneIndividual(gs.population[i]))
		}

		for len(next) < gs.cfg.PopulationSize {
			parentA := gs.selectParent()
			parentB := gs.selectParent()
			child := orderCrossover(parentA.perm, parentB.perm, gs.rng)
			gs.mutate(child)
			next = append(next, individual{perm: child, fitness: gs.evaluate(child)})
		}

		gs.population = next
		gs.sortPopulation()

		if gs.population[0].fitness > gs.best.fitness {
			gs.best = cloneIndividual(gs.population[0])
			stale = 0
		} else {
			stale++
		}
	}

	return gs.best
}
